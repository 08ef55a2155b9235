package patch

import (
	"errors"
	"testing"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/parse"
)

func doc(t *testing.T, s string) boxed.Value {
	t.Helper()
	v, err := boxed.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func equalJSON(t *testing.T, got boxed.Value, want string) {
	t.Helper()
	w := parse.MustParse(want, parse.ParseJSON())
	if !ir.Equal(got.Unbox(), w) {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestApply(t *testing.T) {
	in := doc(t, `{"a": [1, 2], "b": "x"}`)
	out, err := Apply(in, []byte(`[
		{"op": "add", "path": "/a/-", "value": 3},
		{"op": "replace", "path": "/b", "value": "y"},
		{"op": "remove", "path": "/a/0"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	equalJSON(t, out, `{"a": [2, 3], "b": "y"}`)
	equalJSON(t, in, `{"a": [1, 2], "b": "x"}`)

	if _, err := boxed.SetTrue(out, "c"); err != nil {
		t.Errorf("patched document not editable: %v", err)
	}
}

func TestApplyErrors(t *testing.T) {
	in := doc(t, `{"a": 1}`)
	if _, err := Apply(in, []byte(`{"op": "add"}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad patch: %v", err)
	}
	if _, err := Apply(in, []byte(`[{"op": "remove", "path": "/nope"}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("failing op: %v", err)
	}
	if _, err := Apply(in, []byte(`[{"op": "test", "path": "/a", "value": 2}]`)); !errors.Is(err, ErrPatch) {
		t.Errorf("failing test op: %v", err)
	}
}

func TestMerge(t *testing.T) {
	in := doc(t, `{"a": {"b": 1, "c": 2}, "d": [1]}`)
	out, err := Merge(in, []byte(`{"a": {"c": null, "e": 3}, "d": [2]}`))
	if err != nil {
		t.Fatal(err)
	}
	equalJSON(t, out, `{"a": {"b": 1, "e": 3}, "d": [2]}`)

	md, err := MergeDiff(in, out)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Merge(in, md)
	if err != nil {
		t.Fatal(err)
	}
	if !boxed.Equal(again, out) {
		t.Errorf("merge diff %s does not reproduce %s", md, out)
	}
}
