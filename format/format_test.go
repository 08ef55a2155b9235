package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": JSONFormat, "j": JSONFormat, "yaml": YAMLFormat, "yml": YAMLFormat} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || f != YAMLFormat {
		t.Errorf("UnmarshalText: %v %v", f, err)
	}
	if s := JSONFormat.String(); s != "json" {
		t.Errorf("String() = %q", s)
	}
}
