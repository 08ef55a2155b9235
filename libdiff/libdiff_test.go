package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/boxed-json/parse"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nx\nc\n")
	want := []Line{
		{diffpatch.DiffEqual, "a"},
		{diffpatch.DiffDelete, "b"},
		{diffpatch.DiffInsert, "x"},
		{diffpatch.DiffEqual, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnifiedEqual(t *testing.T) {
	if got := Unified("same\n", "same\n"); got != "" {
		t.Errorf("expected no diff, got %q", got)
	}
}

func TestValues(t *testing.T) {
	from := parse.MustParse(`{"a": 1, "b": [true]}`)
	to := parse.MustParse(`{"a": 2, "b": [true]}`)
	got, err := Values(from, to)
	if err != nil {
		t.Fatal(err)
	}
	want := `  {
-   "a": 1,
+   "a": 2,
    "b": [
      true
    ]
  }
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStrings(t *testing.T) {
	got := Strings("hello world", "hello there")
	if !strings.Contains(got, "hello ") {
		t.Errorf("common prefix lost: %q", got)
	}
	if got := Strings("abc", "abc"); got != "abc" {
		t.Errorf("equal strings rendered %q", got)
	}
}
