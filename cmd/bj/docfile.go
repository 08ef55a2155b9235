package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDocFile loads path, or stdin for "-", as an editable document.
func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (boxed.Value, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return boxed.Value{}, err
	}
	doc, err := boxed.Load(d, opts...)
	if err != nil {
		return boxed.Value{}, fmt.Errorf("error decoding %s: %w", path, err)
	}
	theLog.Debug("loaded", "file", path, "bytes", len(d), "kind", doc.Kind())
	return doc, nil
}

// eachDocFile calls f with the document of each file, reading stdin when
// there are none.
func eachDocFile(cc *cli.Context, files []string, opts []parse.ParseOption, f func(file string, doc boxed.Value) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getDocFile(cc, file, opts...)
		if err != nil {
			return err
		}
		if err := f(file, doc); err != nil {
			return err
		}
	}
	return nil
}
