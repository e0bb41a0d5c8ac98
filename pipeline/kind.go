package pipeline

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind discriminates the steps of a prepared pipeline.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks an invalid step

	KindPath
	KindValue
	KindTransform
	KindFilter
	KindIf
	KindIterate
	KindArray
	KindAlt
	KindApply
	KindMutation

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsOperation reports whether k is one of the structured operation kinds.
func (k Kind) IsOperation() bool {
	return k > KindPath && int(k) < KindTotal
}
