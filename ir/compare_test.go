package ir

import (
	"testing"
)

func mustNumber(t *testing.T, text string) *Node {
	t.Helper()
	n, err := FromNumber(text)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(0), -1},
		{"Number < String", FromInt(100), FromString("0"), -1},
		{"String < Array", FromString("z"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromMap(nil), -1},
		{"absent < Null", nil, Null(), -1},
		{"Int == Float", FromInt(1), FromFloat(1.0), 0},
		{"Int == Text", FromInt(10), NumberText("1e1"), 0},
		{"big ints", NumberText("123456789012345678901234567890"), NumberText("123456789012345678901234567891"), -1},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"array prefix", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"array elements", FromSlice([]*Node{FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), 1},
		{
			"object order ignored",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromInt(2)}}),
			FromKeyVals([]KeyVal{{"b", FromInt(2)}, {"a", FromInt(1)}}),
			0,
		},
		{
			"object values",
			FromKeyVals([]KeyVal{{"a", FromInt(1)}}),
			FromKeyVals([]KeyVal{{"a", FromInt(2)}}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("reverse Compare() = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	pairs := [][2]Value{
		{FromInt(1), FromFloat(1)},
		{FromInt(10), mustNumber(t, "1e1")},
		{
			FromKeyVals([]KeyVal{{"a", FromInt(1)}, {"b", FromString("x")}}),
			FromKeyVals([]KeyVal{{"b", FromString("x")}, {"a", FromInt(1)}}),
		},
		{FromSlice([]*Node{Null(), FromBool(true)}), FromSlice([]*Node{Null(), FromBool(true)})},
	}
	for _, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("expected %v == %v", ToAny(p[0]), ToAny(p[1]))
		}
		if Hash(p[0]) != Hash(p[1]) {
			t.Errorf("hash mismatch for %v", ToAny(p[0]))
		}
	}
	if Hash(FromString("a")) == Hash(FromString("b")) {
		t.Error("distinct strings collided")
	}
}
