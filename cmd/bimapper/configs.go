package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	Main *cli.Command
}

type RunConfig struct {
	*MainConfig
	Def string `cli:"name=d aliases=def desc='definition file (yaml or json)'"`

	Reverse bool `cli:"name=r aliases=reverse desc='map from the target shape back to the source shape'"`
	Async   bool `cli:"name=async desc='await asynchronous transformers'"`
	Y       bool `cli:"name=y aliases=yaml desc='output yaml instead of json'"`

	Run *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Def string `cli:"name=d aliases=def desc='definition file (yaml or json)'"`

	Color bool `cli:"name=color desc='color the diff'"`

	Check *cli.Command
}

// useColor reports whether the diff is colored: forced by -color, or
// when writing to a terminal.
func (cfg *CheckConfig) useColor(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Check.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}

type DumpConfig struct {
	*MainConfig
	Def string `cli:"name=d aliases=def desc='definition file (yaml or json)'"`

	Dump *cli.Command
}

type LintConfig struct {
	*MainConfig
	Def string `cli:"name=d aliases=def desc='definition file (yaml or json)'"`

	Lint *cli.Command
}
