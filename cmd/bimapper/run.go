package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"

	"bimapper/mapper"
)

func runMapping(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := requireDef(cfg.Def); err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: run takes at most one input", cli.ErrUsage)
	}
	m, err := mapper.Load(cfg.Def, mapper.WithLogger(theLog))
	if err != nil {
		return err
	}
	in, err := readInput(args)
	if err != nil {
		return err
	}

	theLog.Debug("run", "def", cfg.Def, "reverse", cfg.Reverse, "async", cfg.Async)

	var out any
	switch {
	case cfg.Async:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if cfg.Reverse {
			out, err = m.ReverseAsync(ctx, in)
		} else {
			out, err = m.ForwardAsync(ctx, in)
		}
	case cfg.Reverse:
		out, err = m.Reverse(in)
	default:
		out, err = m.Forward(in)
	}
	if err != nil {
		return fmt.Errorf("error mapping %s: %w", cfg.Def, err)
	}
	return writeOutput(cc.Out, out, cfg.Y)
}
