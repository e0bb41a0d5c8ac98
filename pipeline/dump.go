package pipeline

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"bimapper/internal/common"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a readable tree of p and its named pipelines to w.
func Dump(w io.Writer, p *Prepared) {
	dumpConfig.Fdump(w, p.Pipeline)

	for _, id := range common.SortedKeys(p.Pipelines) {
		io.WriteString(w, "\n"+id+":\n")
		dumpConfig.Fdump(w, p.Pipelines[id])
	}
}

// Sdump returns the Dump of a single pipeline as a string.
func Sdump(p Pipeline) string {
	return dumpConfig.Sdump(p)
}
