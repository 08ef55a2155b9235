package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *KPath
	}{
		{
			name:  "single key",
			input: "a",
			want:  &KPath{Field: stringPtr("a")},
		},
		{
			name:  "nested keys",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "key with indexes",
			input: "a[3][0]",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Index: intPtr(3),
					Next:  &KPath{Index: intPtr(0)},
				},
			},
		},
		{
			name:  "leading index",
			input: "[0].a",
			want: &KPath{
				Index: intPtr(0),
				Next:  &KPath{Field: stringPtr("a")},
			},
		},
		{
			name:  "index then key then index",
			input: "object.array[1].x",
			want: &KPath{
				Field: stringPtr("object"),
				Next: &KPath{
					Field: stringPtr("array"),
					Next: &KPath{
						Index: intPtr(1),
						Next:  &KPath{Field: stringPtr("x")},
					},
				},
			},
		},
		{
			name:  "numeric key",
			input: "object.4",
			want: &KPath{
				Field: stringPtr("object"),
				Next:  &KPath{Field: stringPtr("4")},
			},
		},
		{
			name:  "key with spaces, trimmed path",
			input: "  first name.x ",
			want: &KPath{
				Field: stringPtr("first name"),
				Next:  &KPath{Field: stringPtr("x")},
			},
		},
		{
			name:  "leading zeros",
			input: "a[007]",
			want: &KPath{
				Field: stringPtr("a"),
				Next:  &KPath{Index: intPtr(7)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseAppend(t *testing.T) {
	got, err := Parse("result.value.set[]", AllowAppend(true))
	if err != nil {
		t.Fatal(err)
	}
	want := &KPath{
		Field: stringPtr("result"),
		Next: &KPath{
			Field: stringPtr("value"),
			Next: &KPath{
				Field: stringPtr("set"),
				Next:  &KPath{Append: true},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := Parse("result.value.set[]"); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected ErrSyntax without AllowAppend, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"   ",
		".",
		".a",
		"a.",
		"a..b",
		"a.[0]",
		".[0]",
		"a]",
		"]",
		"a[0]b",
		"a[0]]",
		"a[",
		"a[1",
		"a[x]",
		"a[-1]",
		"a[1.5]",
		"a[0].",
		"a[99999999999999999999999]",
	}
	for _, input := range bad {
		t.Run(input, func(t *testing.T) {
			kp, err := Parse(input, AllowAppend(true))
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) = %v, %v; want ErrSyntax", input, kp, err)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "a"},
		{"a.b[0][1].c", "a.b[0][1].c"},
		{"[2].x", "[2].x"},
		{" a[01] ", "a[1]"},
		{"list[]", "list[]"},
	}
	for _, tt := range tests {
		kp, err := Parse(tt.in, AllowAppend(true))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := kp.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSegments(t *testing.T) {
	kp, err := Parse("a[0].b[]", AllowAppend(true))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, seg := range kp.Segments() {
		got = append(got, seg.SegmentString())
	}
	if diff := cmp.Diff([]string{"a", "[0]", "b", "[]"}, got); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
	if kp.Len() != 4 {
		t.Errorf("Len() = %d", kp.Len())
	}
	if !kp.Next.IsIndex() || kp.IsIndex() {
		t.Error("IsIndex mismatch")
	}
}
