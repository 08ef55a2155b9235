package ir

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by exact value, so 1 and 1.0 are equal.  Objects compare
// by their sorted keys and then by value, so field order does not matter.
// An absent value sorts before null.
func Compare(a, b Value) int {
	aNil, bNil := IsNil(a), IsNil(b)
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(leaf(a).String, leaf(b).String)
	case BoolType:
		ab, bb := leaf(a).Bool, leaf(b).Bool
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a.(Array), b.(Array))
	case ObjectType:
		return compareObjects(a.(Object), b.(Object))
	}
	return 0
}

func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func leaf(v Value) *Node {
	n, _ := v.(*Node)
	if n == nil {
		return &Node{Type: v.Kind()}
	}
	return n
}

func compareNumbers(a, b Value) int {
	na, nb := leaf(a), leaf(b)
	if na.Int64 != nil && nb.Int64 != nil {
		return cmp.Compare(*na.Int64, *nb.Int64)
	}
	ra, okA := na.Rat()
	rb, okB := nb.Rat()
	if !okA || !okB {
		return strings.Compare(na.NumberText(), nb.NumberText())
	}
	return ra.Cmp(rb)
}

func compareArrays(a, b Array) int {
	lenA := a.Len()
	lenB := b.Len()
	bv := make([]Value, 0, lenB)
	for _, v := range b.Items() {
		bv = append(bv, v)
	}
	for i, v := range a.Items() {
		if i >= len(bv) {
			break
		}
		if c := Compare(v, bv[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b Object) int {
	am, bm := entryMap(a), entryMap(b)
	aKeys := slices.Sorted(maps.Keys(am))
	bKeys := slices.Sorted(maps.Keys(bm))
	if c := slices.Compare(aKeys, bKeys); c != 0 {
		return c
	}
	for _, k := range aKeys {
		if c := Compare(am[k], bm[k]); c != 0 {
			return c
		}
	}
	return 0
}

func entryMap(o Object) map[string]Value {
	res := make(map[string]Value, o.Len())
	for k, v := range o.Entries() {
		res[k] = v
	}
	return res
}
