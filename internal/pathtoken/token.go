package pathtoken

import (
	"strconv"
	"strings"
)

const (
	// SetPrefix marks a token that writes instead of reads.
	SetPrefix = ">"
	// GetPrefix forces a read path. It is stripped while tokenizing.
	GetPrefix = "<"

	Parent = "^"
	Root   = "^^"
	Array  = "[]"
)

// Split tokenizes a path. Set paths come back innermost first, so a
// pipeline walking them left to right writes from the deepest location
// outward.
func Split(path string) []string {
	set := false

	switch {
	case strings.HasPrefix(path, SetPrefix):
		set = true
		path = path[len(SetPrefix):]
	case strings.HasPrefix(path, GetPrefix):
		path = path[len(GetPrefix):]
	}

	var tokens []string
	for _, seg := range splitDots(path) {
		tokens = append(tokens, splitSegment(seg)...)
	}

	if !set {
		return tokens
	}

	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[len(tokens)-1-i] = SetPrefix + t
	}

	return out
}

// splitDots splits on unescaped dots and drops empty segments.
func splitDots(path string) []string {
	var (
		segs []string
		b    strings.Builder
	)

	flush := func() {
		if b.Len() > 0 {
			segs = append(segs, b.String())
			b.Reset()
		}
	}

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '\\' && i+1 < len(path) && path[i+1] == '.':
			b.WriteByte('.')
			i++
		case c == '.':
			flush()
		default:
			b.WriteByte(c)
		}
	}

	flush()

	return segs
}

func splitSegment(seg string) []string {
	switch {
	case seg == "":
		return nil
	case strings.HasPrefix(seg, Root):
		return append([]string{Root}, splitSegment(seg[len(Root):])...)
	case strings.HasPrefix(seg, Parent):
		return append([]string{Parent}, splitSegment(seg[len(Parent):])...)
	}

	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return []string{seg}
	}

	brackets, ok := splitBrackets(seg[open:])
	if !ok {
		return []string{seg}
	}

	if open == 0 {
		return brackets
	}

	return append([]string{seg[:open]}, brackets...)
}

// splitBrackets splits "[0][]" into its bracket tokens. It reports false
// when s is not made only of well-formed brackets.
func splitBrackets(s string) ([]string, bool) {
	var out []string

	for s != "" {
		if s[0] != '[' {
			return nil, false
		}

		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, false
		}

		if inner := s[1:end]; inner != "" {
			if _, err := strconv.Atoi(inner); err != nil {
				return nil, false
			}
		}

		out = append(out, s[:end+1])
		s = s[end+1:]
	}

	return out, true
}

// IsSet returns true for write tokens.
func IsSet(token string) bool {
	return strings.HasPrefix(token, SetPrefix)
}

// Strip removes the set prefix, if any.
func Strip(token string) string {
	return strings.TrimPrefix(token, SetPrefix)
}

// Invert turns a get token into a set token and the other way around.
func Invert(token string) string {
	if IsSet(token) {
		return Strip(token)
	}

	return SetPrefix + token
}

// IsParent reports whether token (get or set) is a parent marker.
func IsParent(token string) bool {
	return Strip(token) == Parent
}

// IsRoot reports whether token (get or set) is a root marker.
func IsRoot(token string) bool {
	return Strip(token) == Root
}

// IsArray reports whether token (get or set) is the whole-array marker.
func IsArray(token string) bool {
	return Strip(token) == Array
}

// Index returns the index of an "[n]" token.
func Index(token string) (int, bool) {
	t := Strip(token)
	if len(t) < 3 || t[0] != '[' || t[len(t)-1] != ']' {
		return 0, false
	}

	n, err := strconv.Atoi(t[1 : len(t)-1])
	if err != nil {
		return 0, false
	}

	return n, true
}
