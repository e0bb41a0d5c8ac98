package main

import (
	"github.com/scott-cotton/cli"

	"bimapper/mapper"
	"bimapper/pipeline"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Dump.Parse(cc, args)
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
	pipeline.Dump(cc.Out, m.Pipeline())
	return nil
}
