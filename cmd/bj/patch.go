package main

import (
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: requires a patch file and at most one file to which to apply it", cli.ErrUsage)
	}
	// patches may be written in YAML; the patch library wants JSON.
	p, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pd, err := p.MarshalJSON()
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	target, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var res boxed.Value
	if cfg.Merge {
		res, err = patch.Merge(target, pd)
	} else {
		res, err = patch.Apply(target, pd)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := res.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
