package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "x",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default: detect)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "o",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "bj").
		WithSynopsis("bj [opts] command [opts]").
		WithDescription("bj reads and edits JSON and YAML documents with boxed paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bjMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			ViewCommand(cfg),
			PatchCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			ExprCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-strict] <path> [files]").
		WithDescription("get the value at a path such as a.b[0].c").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-diff] <file> path=value [path=value ...]").
		WithDescription(setDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

const setDescription = `set writes values into a document and outputs the result.

Values are read as YAML, so 'a=1' sets a number, 'a=x' a string and
'a={b: [true]}' an object.  Missing objects along the path are created, as
are arrays when the next index is [0] or [].  An index may be at most the
length of the array; 'list[]' appends.

If an assignment cannot be made, for example because a value along the path
is a string, nothing is output and bj exits with status 1.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-merge] <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON patch, or with -merge an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg, Merge: true}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge <mergefile> [file]").
		WithDescription("apply an RFC 7386 merge patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-merge] a b").
		WithDescription("diff two documents; exits 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <jsonpath> [files]").
		WithDescription("select values with a JSONPath expression, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return queryCmd(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func ExprCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExprConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("expr").
		WithAliases("e").
		WithSynopsis("expr [-strict] <expression> [files]").
		WithDescription(exprDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exprCmd(cfg, cc, args)
		})
	cfg.Expr = cmd
	return cmd
}

const exprDescription = `expr evaluates an expression against each document.

The document is the variable doc.  These functions take a path:

  path(p)     the value at p, or nil
  valid(p)    whether p has a value
  kind(p)     Object, Array, String, Number, True, False, Null or
              HadNull, HadMissing, HadInvalid
  null(p), missing(p), invalid(p)

Example:

  bj expr 'valid("spec.replicas") && path("spec.replicas") > 1' deploy.yaml`
