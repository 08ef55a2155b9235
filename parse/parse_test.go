package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/boxed-json/encode"
	"github.com/signadot/boxed-json/ir"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`null`, `null`},
		{`true`, `true`},
		{` false `, `false`},
		{`22`, `22`},
		{`1e14`, `1e14`},
		{`-0.50`, `-0.50`},
		{`123456789012345678901234567890`, `123456789012345678901234567890`},
		{`"hello\né"`, `"hello\né"`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`{"b": 1, "a": [1, {"x": null}]}`, `{"b":1,"a":[1,{"x":null}]}`},
		{`{"a": 1, "b": 2, "a": 3}`, `{"a":3,"b":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node, err := JSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			got := encode.MustString(node, encode.EncodeWire(true))
			if got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	for _, in := range []string{`{`, `[1,]`, `01`, `NaN`, `{"a" 1}`, `hello`, `"unterminated`} {
		if _, err := JSON([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("JSON(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	node, err := JSON([]byte(`[1, 2.5, 1e400]`))
	if err != nil {
		t.Fatal(err)
	}
	i, ok := node.Values[0].Int64Value()
	if !ok || i != 1 || node.Values[0].Int64 == nil {
		t.Errorf("int payload %v %v", i, ok)
	}
	if node.Values[1].Float64 == nil || *node.Values[1].Float64 != 2.5 {
		t.Error("float payload missing")
	}
	if got := node.Values[2].NumberText(); got != "1e400" {
		t.Errorf("huge number text %q", got)
	}
}

func TestParseYAML(t *testing.T) {
	in := `
b: 1
a:
  - x
  - 2.5
  - true
  - null
c:
  d: big
`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, node.Keys()); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"b": 1,
		"a": []any{"x", 2.5, true, nil},
		"c": map[string]any{"d": "big"},
	}
	if diff := cmp.Diff(want, ir.ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseFormatForced(t *testing.T) {
	if _, err := Parse([]byte("a: 1"), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Errorf("expected json failure, got %v", err)
	}
	node, err := Parse([]byte(`{"a": 1}`), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(node, encode.EncodeWire(true)); got != `{"a":1}` {
		t.Errorf("got %s", got)
	}
	if _, err := Parse([]byte("   ")); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
