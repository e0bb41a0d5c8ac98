package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("info", "note", "", "")
	d.AddWarning("empty-alt", "$alt has no alternatives", "entry", "title")
	d.AddError("unknown-transformer", `unknown transformer "uper"`, "", "title.$transform", "upper")

	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, `title.$transform: [unknown-transformer] unknown transformer "uper" (did you mean upper?)`, err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: "unused-pipeline", Message: "never applied", Pipeline: "entry"}
	assert.Equal(t, "[entry]: [unused-pipeline] never applied", d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "x", "", "")
	b.AddWarning("y", "y", "", "")
	b.AddError("z", "z", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
