package parse

import (
	"github.com/signadot/boxed-json/format"
)

type parseOpts struct {
	format    format.Format
	formatSet bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}

// ParseFormat fixes the input format.  Without it, input that is not JSON
// is parsed as YAML.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}
