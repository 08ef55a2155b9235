package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/libdiff"
	"github.com/signadot/boxed-json/parse"

	"github.com/scott-cotton/cli"
)

type assignment struct {
	path  string
	value ir.Value
}

func parseAssignment(arg string) (assignment, error) {
	path, val, ok := strings.Cut(arg, "=")
	if !ok {
		return assignment{}, fmt.Errorf("%w: expected path=value, got %q", cli.ErrUsage, arg)
	}
	node, err := parse.Parse([]byte(val), parse.ParseYAML())
	if errors.Is(err, parse.ErrEmpty) {
		node, err = ir.FromString(""), nil
	}
	if err != nil {
		return assignment{}, fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, path, err)
	}
	return assignment{path: path, value: node}, nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one path=value", cli.ErrUsage)
	}
	as := make([]assignment, 0, len(args)-1)
	for _, arg := range args[1:] {
		a, err := parseAssignment(arg)
		if err != nil {
			return err
		}
		as = append(as, a)
	}
	doc, err := getDocFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return err
	}
	orig := boxed.Copy(doc)
	for _, a := range as {
		res, err := boxed.Set(doc, a.path, a.value)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if !res.IsValid() {
			theLog.Error("cannot set", "path", a.path, "reason", res.ErrKind())
			return cli.ExitCodeErr(1)
		}
		theLog.Debug("set", "path", a.path, "value", encode.MustString(a.value, encode.EncodeWire(true)))
	}
	if cfg.Diff {
		d, err := libdiff.Values(orig.Unbox(), doc.Unbox(), encode.EncodeFormat(formatOf(cfg.MainConfig)))
		if err != nil {
			return err
		}
		_, err = cc.Out.Write([]byte(d))
		return err
	}
	if err := doc.Encode(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
