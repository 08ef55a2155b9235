package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, file string) error {
	in, err := readFile(cc, file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	if err := viewDocs(cfg, cc.Out, in); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// viewDocs renders each document of a YAML stream separated by "---".
func viewDocs(cfg *ViewConfig, w io.Writer, in []byte) error {
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		node, err := parse.Parse(doc, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
