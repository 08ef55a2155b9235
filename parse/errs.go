package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("parse error")
	ErrEmpty    = fmt.Errorf("%w: empty document", ErrParse)
	ErrYAMLKey  = fmt.Errorf("%w: unsupported yaml key", ErrParse)
	ErrYAMLType = fmt.Errorf("%w: unsupported yaml value", ErrParse)
)
