package boxed

import (
	"errors"
	"testing"

	"github.com/signadot/boxed-json/ir"
	"github.com/signadot/boxed-json/ir/kpath"
	"github.com/signadot/boxed-json/parse"
	"github.com/tidwall/sjson"
)

func load(t *testing.T, s string) Value {
	t.Helper()
	v, err := Load([]byte(s), parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSetScenarios(t *testing.T) {
	doc := load(t, `{}`)
	res, err := Set(doc, "result.value.set[]", ir.FromBool(true))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsValid() {
		t.Fatalf("set failed: %s", res.ErrKind())
	}
	if got := doc.String(); got != `{"result":{"value":{"set":[true]}}}` {
		t.Errorf("got %s", got)
	}
	if got := res.String(); got != doc.String() {
		t.Errorf("Set should return root, got %s", got)
	}

	doc = load(t, `{"arr":[1,2,3]}`)
	res, err = SetInt(doc, "arr[5]", 9)
	if err != nil {
		t.Fatal(err)
	}
	if !res.HadMissing() || res.Shape() != NumberShape {
		t.Errorf("got %s/%s", res.ErrKind(), res.Shape())
	}
	if got := doc.String(); got != `{"arr":[1,2,3]}` {
		t.Errorf("document changed: %s", got)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		path  string
		value string
		want  string
	}{
		{"overwrite key", `{"a":1}`, "a", `2`, `{"a":2}`},
		{"new key at end", `{"a":1}`, "b", `"x"`, `{"a":1,"b":"x"}`},
		{"overwrite index", `{"a":[1,2]}`, "a[0]", `0`, `{"a":[0,2]}`},
		{"index at length appends", `{"a":[1,2]}`, "a[2]", `3`, `{"a":[1,2,3]}`},
		{"append", `{"a":[1,2]}`, "a[]", `3`, `{"a":[1,2,3]}`},
		{"array root", `[[1]]`, "[0][]", `2`, `[[1,2]]`},
		{"new object under array", `{"a":[]}`, "a[0].b", `1`, `{"a":[{"b":1}]}`},
		{"new array under append", `{"a":[1]}`, "a[][0]", `2`, `{"a":[1,[2]]}`},
		{"deep new", `{}`, "x.y[0].z[]", `true`, `{"x":{"y":[{"z":[true]}]}}`},
		{"into existing", `{"x":{"y":[{"k":0}]}}`, "x.y[0].z", `{"q":null}`, `{"x":{"y":[{"k":0,"z":{"q":null}}]}}`},
		{"null value", `{"a":1}`, "a", `null`, `{"a":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := load(t, tt.doc)
			v := parse.MustParse(tt.value, parse.ParseJSON())
			res, err := Set(doc, tt.path, v)
			if err != nil {
				t.Fatal(err)
			}
			if !res.IsValid() {
				t.Fatalf("set failed: %s", res.ErrKind())
			}
			if got := doc.String(); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
			if got := MustEval(doc, resolveAppend(tt.path, doc)); !ir.Equal(got.Unbox(), v) {
				t.Errorf("read back %s want %s", got, tt.value)
			}
		})
	}
}

// resolveAppend replaces "[]" segments with the index they wrote to, the
// last element after the write.
func resolveAppend(path string, doc Value) string {
	kp, err := kpath.Parse(path, kpath.AllowAppend(true))
	if err != nil {
		panic(err)
	}
	cur := doc
	for seg := kp; seg != nil; seg = seg.Next {
		switch {
		case seg.Field != nil:
			cur = cur.Get(*seg.Field)
		case seg.Append:
			i := cur.Len() - 1
			seg.Append = false
			seg.Index = &i
			cur = cur.At(i)
		default:
			cur = cur.At(*seg.Index)
		}
	}
	return kp.String()
}

func TestSetAtomic(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
		want ErrKind
	}{
		{"missing index after new object", `{}`, "p.q[3]", HadMissing},
		{"missing index after existing", `{"p":{}}`, "p.q.r[1]", HadMissing},
		{"past end of intermediate", `{"a":[1]}`, "a[3].b", HadMissing},
		{"past end of terminal", `{"a":[]}`, "a[1]", HadMissing},
		{"missing intermediate index", `{}`, "x[2].y", HadMissing},
		{"key on number", `{"a":{"b":1}}`, "a.b.c", HadInvalid},
		{"index on object", `{"a":{}}`, "a[0]", HadInvalid},
		{"through null", `{"a":null}`, "a.b", HadNull},
		{"new branch then past end", `{"a":null}`, "b[1]", HadMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := load(t, tt.doc)
			before := doc.String()
			res, err := SetString(doc, tt.path, "v")
			if err != nil {
				t.Fatal(err)
			}
			if res.ErrKind() != tt.want || res.Shape() != StringShape {
				t.Errorf("got %s/%s want %s/String", res.ErrKind(), res.Shape(), tt.want)
			}
			if after := doc.String(); after != before {
				t.Errorf("document changed: %s -> %s", before, after)
			}
		})
	}
}

func TestSetSentinelShape(t *testing.T) {
	doc := load(t, `{"a":null}`)
	tests := []struct {
		v     ir.Value
		shape Shape
	}{
		{ir.FromSlice(nil), ArrayShape},
		{ir.FromMap(nil), ObjectShape},
		{ir.FromInt(1), NumberShape},
		{ir.FromString(""), StringShape},
		{ir.FromBool(true), LiteralShape},
		{nil, LiteralShape},
	}
	for _, tt := range tests {
		res, err := Set(doc, "a.b", tt.v)
		if err != nil {
			t.Fatal(err)
		}
		if !res.HadNull() || res.Shape() != tt.shape {
			t.Errorf("got %s/%s want HadNull/%s", res.ErrKind(), res.Shape(), tt.shape)
		}
	}
}

func TestSetErrors(t *testing.T) {
	if _, err := SetTrue(load(t, `{}`), "a..b"); !errors.Is(err, kpath.ErrSyntax) {
		t.Errorf("expected ErrSyntax, got %v", err)
	}
	ro := of(`{"a":{}}`)
	if _, err := SetTrue(ro, "a.b"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if got := ro.String(); got != `{"a":{}}` {
		t.Errorf("read-only document changed: %s", got)
	}
	res, err := SetTrue(Mutable(ro), "a.b")
	if err != nil || !res.IsValid() {
		t.Fatalf("set on Mutable root: %v %s", err, res.ErrKind())
	}
	if got := res.String(); got != `{"a":{"b":true}}` {
		t.Errorf("got %s", got)
	}

	for _, root := range []Value{of(`1`), of(`null`), HadMissingLiteral} {
		res, err := SetFalse(root, "a")
		if err != nil {
			t.Fatal(err)
		}
		if res.IsValid() || res.Shape() != LiteralShape {
			t.Errorf("literal root %s: got %s/%s", root, res.ErrKind(), res.Shape())
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("MustSet did not panic")
		}
	}()
	MustSet(ro, "a.b", nil)
}

func TestSetConveniences(t *testing.T) {
	doc := load(t, `{}`)
	for _, step := range []func() (Value, error){
		func() (Value, error) { return SetTrue(doc, "t") },
		func() (Value, error) { return SetFalse(doc, "f") },
		func() (Value, error) { return SetNull(doc, "n") },
		func() (Value, error) { return SetString(doc, "s", "x") },
		func() (Value, error) { return SetInt(doc, "i", -3) },
		func() (Value, error) { return SetFloat(doc, "x", 0.5) },
		func() (Value, error) { return Set(doc, "nil", nil) },
	} {
		if _, err := step(); err != nil {
			t.Fatal(err)
		}
	}
	want := `{"t":true,"f":false,"n":null,"s":"x","i":-3,"x":0.5,"nil":null}`
	if got := doc.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestSetMatchesSJSON(t *testing.T) {
	const doc = `{"a":{"b":[1,2]},"c":"x"}`
	tests := []struct {
		path  string
		spath string
		raw   string
	}{
		{"a.b[0]", "a.b.0", `10`},
		{"a.b[]", "a.b.-1", `3`},
		{"a.b[2]", "a.b.2", `{"k":[]}`},
		{"c", "c", `"y"`},
		{"d", "d", `true`},
		{"a.e", "a.e", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			root := load(t, doc)
			if _, err := Set(root, tt.path, parse.MustParse(tt.raw, parse.ParseJSON())); err != nil {
				t.Fatal(err)
			}
			out, err := sjson.SetRaw(doc, tt.spath, tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			want := parse.MustParse(out, parse.ParseJSON())
			if !ir.Equal(root.Unbox(), want) {
				t.Errorf("got %s want %s", root, out)
			}
		})
	}
}
