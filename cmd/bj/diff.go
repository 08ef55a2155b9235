package main

import (
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/libdiff"
	"github.com/signadot/boxed-json/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	b, err := getDocFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if boxed.Equal(a, b) {
		return nil
	}
	if cfg.Merge {
		md, err := patch.MergeDiff(a, b)
		if err != nil {
			return err
		}
		mp, err := boxed.Parse(md)
		if err != nil {
			return err
		}
		if err := mp.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	d, err := libdiff.Values(a.Unbox(), b.Unbox(), encode.EncodeFormat(formatOf(cfg.MainConfig)))
	if err != nil {
		return err
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
