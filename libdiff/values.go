package libdiff

import (
	"strings"

	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
)

// Values renders from and to with opts and returns their Unified diff.
func Values(from, to ir.Value, opts ...encode.EncodeOption) (string, error) {
	a, err := render(from, opts)
	if err != nil {
		return "", err
	}
	b, err := render(to, opts)
	if err != nil {
		return "", err
	}
	return Unified(a, b), nil
}

func render(v ir.Value, opts []encode.EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
