// Package mapper is the library entry point of bimapper.
//
// A Mapper is a definition compiled once with the standard transformers
// and any options given to New or Load. It can then map values in both
// directions, synchronously or awaiting the futures returned by async
// transformers.
//
//	m, err := mapper.Load("article.yaml", mapper.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	doc, err := m.Forward(source)
//	...
//	source, err = m.Reverse(doc)
//
// A Mapper is safe for concurrent use; every call runs with its own state.
package mapper
