package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/format"
	"github.com/signadot/boxed-json/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	WireOut  bool   `cli:"name=wire desc='output in compact format'"`
	Indent   int    `cli:"name=indent desc='indentation width'"`
	LogLevel string `cli:"name=log-level desc='log level: debug, info, warn or error'"`

	InFormat, OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.InFormat == nil {
		return nil
	}
	return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
		encode.Indent(cfg.Indent),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='exit 1 when the path has no value'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a diff instead of the result'"`

	Set *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='the patch is an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='output a merge patch'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type ExprConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='exit 1 when the result is false, null or empty'"`

	Expr *cli.Command
}

func formatOf(cfg *MainConfig) format.Format {
	if cfg.OutFormat == nil {
		return format.JSONFormat
	}
	return *cfg.OutFormat
}
