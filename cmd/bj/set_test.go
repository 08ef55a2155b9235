package main

import (
	"errors"
	"testing"

	"github.com/signadot/boxed-json/encode"

	"github.com/scott-cotton/cli"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		arg  string
		path string
		want string
	}{
		{"a.b=1", "a.b", `1`},
		{"a=x", "a", `"x"`},
		{"a=", "a", `""`},
		{"list[]=true", "list[]", `true`},
		{"a={b: [1, null]}", "a", `{"b":[1,null]}`},
		{"eq=x=y", "eq", `"x=y"`},
		{`s="1"`, "s", `"1"`},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			a, err := parseAssignment(tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			if a.path != tt.path {
				t.Errorf("path %q want %q", a.path, tt.path)
			}
			if got := encode.MustString(a.value, encode.EncodeWire(true)); got != tt.want {
				t.Errorf("value %s want %s", got, tt.want)
			}
		})
	}
	if _, err := parseAssignment("novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}
