package main

import (
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/script"

	"github.com/scott-cotton/cli"
)

func exprCmd(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expr.Parse(cc, args)
	if err != nil {
		cfg.Expr.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expr requires an expression", cli.ErrUsage)
	}
	src := args[0]
	falsy := false
	err = eachDocFile(cc, args[1:], cfg.parseOpts(), func(file string, doc boxed.Value) error {
		res, err := script.Eval(doc, src)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", file, err)
		}
		if !ir.Truth(res.Unbox()) {
			falsy = true
		}
		return res.Encode(cc.Out, cfg.encOpts(cc.Out)...)
	})
	if err != nil {
		return err
	}
	if falsy && cfg.Strict {
		return cli.ExitCodeErr(1)
	}
	return nil
}
