package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"bimapper/internal/definition"
	"bimapper/internal/diagnostic"
	"bimapper/pipeline"
	"bimapper/transformers"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := requireDef(cfg.Def); err != nil {
		return err
	}
	f, err := definition.LoadFile(cfg.Def)
	if err != nil {
		return err
	}
	if !lintFile(cc.Out, f) {
		return cli.ExitCodeErr(1)
	}
	theLog.Info("definition ok", "def", cfg.Def)
	return nil
}

// lintFile reports the diagnostics of f, then prepares it when they hold
// no error. It returns false when f would not prepare.
func lintFile(w io.Writer, f *definition.File) bool {
	reg := transformers.Defaults()
	diags := definition.Validate(f, reg.Names())
	for _, d := range diags.All() {
		fmt.Fprintln(w, d.String())
	}
	if diags.HasErrors() {
		return false
	}

	opts := f.Options(reg.Map())
	opts.Logger = theLog
	if _, err := pipeline.Prepare(f.Mapping.Def, opts); err != nil {
		fmt.Fprintln(w, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "prepare_failed",
			Message:  err.Error(),
		}.String())
		return false
	}
	return true
}
