package main

import (
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/query"

	"github.com/scott-cotton/cli"
)

func queryCmd(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a JSONPath expression", cli.ErrUsage)
	}
	q, err := query.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeWire(true))
	return eachDocFile(cc, args[1:], cfg.parseOpts(), func(file string, doc boxed.Value) error {
		vs, err := q.Select(doc)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, q, err)
		}
		theLog.Debug("query", "file", file, "results", len(vs))
		for _, v := range vs {
			if err := v.Encode(cc.Out, opts...); err != nil {
				return err
			}
			if _, err := cc.Out.Write([]byte{'\n'}); err != nil {
				return err
			}
		}
		return nil
	})
}
