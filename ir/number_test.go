package ir

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromNumber(t *testing.T) {
	good := []string{"0", "-1", "3.25", "1e10", "-2.5E-3", "123456789012345678901234567890"}
	for _, text := range good {
		n, err := FromNumber(text)
		if err != nil {
			t.Errorf("FromNumber(%q): %v", text, err)
			continue
		}
		if got := n.NumberText(); got != text {
			t.Errorf("NumberText() = %q, want %q", got, text)
		}
	}
	bad := []string{"", " 1", "01", "1.", "+1", "0x10", `"1"`, "true", "NaN"}
	for _, text := range bad {
		if _, err := FromNumber(text); !errors.Is(err, ErrNumber) {
			t.Errorf("FromNumber(%q) error = %v, want ErrNumber", text, err)
		}
	}
}

func TestNumberConversions(t *testing.T) {
	tests := []struct {
		name     string
		node     *Node
		text     string
		i64      int64
		i64OK    bool
		f64      float64
		integral bool
	}{
		{"int", FromInt(42), "42", 42, true, 42, true},
		{"float", FromFloat(2.5), "2.5", 2, true, 2.5, false},
		{"negative float", FromFloat(-2.5), "-2.5", -2, true, -2.5, false},
		{"exponent", NumberText("1e3"), "1e3", 1000, true, 1000, true},
		{"huge", NumberText("1e30"), "1e30", 0, false, 1e30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.NumberText(); got != tt.text {
				t.Errorf("NumberText() = %q, want %q", got, tt.text)
			}
			i, ok := tt.node.Int64Value()
			if ok != tt.i64OK || i != tt.i64 {
				t.Errorf("Int64Value() = %d, %v, want %d, %v", i, ok, tt.i64, tt.i64OK)
			}
			f, _ := tt.node.Float64Value()
			if f != tt.f64 {
				t.Errorf("Float64Value() = %v, want %v", f, tt.f64)
			}
			if got := tt.node.IsIntegral(); got != tt.integral {
				t.Errorf("IsIntegral() = %v, want %v", got, tt.integral)
			}
		})
	}
}

func TestBigInt(t *testing.T) {
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	n := FromBigInt(want)
	got, ok := n.BigInt()
	if !ok || got.Cmp(want) != 0 {
		t.Errorf("BigInt() = %v, want %v", got, want)
	}
	if n.Int64 != nil {
		t.Error("unexpected int64 payload")
	}
	if FromBigInt(big.NewInt(7)).Int64 == nil {
		t.Error("expected small big.Int to use int64 payload")
	}
}

func TestFromFloatNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FromFloat(f).Type; got != NullType {
			t.Errorf("FromFloat(%v).Type = %s", f, got)
		}
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": []any{1, 2.5, "x", true, nil},
		"b": map[string]any{"c": uint64(7)},
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{1, 2.5, "x", true, nil},
		"b": map[string]any{"c": 7},
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrFromAny) {
		t.Errorf("expected ErrFromAny, got %v", err)
	}
}
