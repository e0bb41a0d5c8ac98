// Package pathtoken splits path strings into the primitive tokens a
// prepared pipeline is made of.
//
// # Path Syntax
//
//   - Properties: "content.heading"
//   - Indexes: "items[0]", "items[-1]" (negative counts from the end)
//   - Whole arrays: "items[]"
//   - Parent and root: "^.title", "^^.meta"
//   - Set paths: ">meta.title" (tokens are prefixed with ">" and reversed)
//   - Explicit get: "<title"
//   - Escaped dots: "a\.b" is the single property "a.b"
//
// Tokenizing never fails. Brackets that do not hold an integer, or are
// not terminated, are kept as literal property text.
package pathtoken
