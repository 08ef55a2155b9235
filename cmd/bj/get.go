package main

import (
	"fmt"

	"github.com/signadot/boxed-json/boxed"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	failed := false
	err = eachDocFile(cc, args[1:], cfg.parseOpts(), func(file string, doc boxed.Value) error {
		v, err := boxed.Eval(doc, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if !v.IsValid() {
			theLog.Warn("no value", "file", file, "path", path, "reason", v.ErrKind())
			failed = true
		}
		if err := v.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed && cfg.Strict {
		return cli.ExitCodeErr(1)
	}
	return nil
}
