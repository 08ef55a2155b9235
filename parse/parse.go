// Package parse reads JSON and YAML documents into ir trees.
package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/boxed-json/debug"
	"github.com/signadot/boxed-json/format"
	"github.com/signadot/boxed-json/ir"
)

// Parse parses a single document.  Number text is kept verbatim and, for
// objects with duplicate keys, the last value wins at the position of the
// first occurrence.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	if po.formatSet {
		switch po.format {
		case format.JSONFormat:
			return JSON(d)
		case format.YAMLFormat:
			return YAML(d)
		default:
			return nil, fmt.Errorf("%w: %w: %s", ErrParse, format.ErrBadFormat, po.format)
		}
	}
	node, jErr := JSON(d)
	if jErr == nil {
		return node, nil
	}
	if debug.Parse() {
		debug.Logf("parse: not json (%v), trying yaml", jErr)
	}
	node, yErr := YAML(d)
	if yErr != nil {
		return nil, fmt.Errorf("%w (as json: %w)", yErr, jErr)
	}
	return node, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// MustParse is Parse but panics on error.
func MustParse(s string, opts ...ParseOption) *ir.Node {
	node, err := ParseString(s, opts...)
	if err != nil {
		panic(err)
	}
	return node
}
