package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"bimapper/mapper"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := requireDef(cfg.Def); err != nil {
		return err
	}
	m, err := mapper.Load(cfg.Def, mapper.WithLogger(theLog))
	if err != nil {
		return err
	}
	in, err := readInput(args)
	if err != nil {
		return err
	}
	mapped, err := m.Forward(in)
	if err != nil {
		return fmt.Errorf("error mapping forward: %w", err)
	}
	back, err := m.Reverse(mapped)
	if err != nil {
		return fmt.Errorf("error mapping back: %w", err)
	}

	from, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	to, err := yaml.Marshal(back)
	if err != nil {
		return err
	}
	if string(from) == string(to) {
		theLog.Info("round trip ok", "def", cfg.Def)
		return nil
	}
	writeDiff(cc.Out, string(from), string(to), cfg.useColor(cc))
	return cli.ExitCodeErr(1)
}

// writeDiff writes a line diff of from and to. Deleted lines are what
// the round trip lost, inserted lines what it added.
func writeDiff(w io.Writer, from, to string, colored bool) {
	del, ins, eq := fmt.Sprintf, fmt.Sprintf, fmt.Sprintf
	if colored {
		red, green := color.New(color.FgRed), color.New(color.FgGreen)
		red.EnableColor()
		green.EnableColor()
		del, ins = red.SprintfFunc(), green.SprintfFunc()
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			switch d.Type {
			case diffpatch.DiffDelete:
				fmt.Fprintln(w, del("- %s", line))
			case diffpatch.DiffInsert:
				fmt.Fprintln(w, ins("+ %s", line))
			case diffpatch.DiffEqual:
				fmt.Fprintln(w, eq("  %s", line))
			}
		}
	}
}
