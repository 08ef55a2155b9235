package ir

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromFloat returns a number node for f.  JSON has no representation for
// NaN or infinities, so those yield a null node.
func FromFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBigInt(v *big.Int) *Node {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return &Node{
		Type:   NumberType,
		Number: v.String(),
	}
}

// FromNumber returns a number node holding text verbatim.  The text must be
// a JSON number.
func FromNumber(text string) (*Node, error) {
	if text == "" || strings.TrimSpace(text) != text {
		return nil, fmt.Errorf("%w: %q", ErrNumber, text)
	}
	if c := text[0]; c != '-' && (c < '0' || c > '9') {
		return nil, fmt.Errorf("%w: %q", ErrNumber, text)
	}
	if err := fastjson.Validate(text); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNumber, text, err)
	}
	return NumberText(text), nil
}

// NumberText returns a number node for text, which must already be a valid
// JSON number.
func NumberText(text string) *Node {
	res := &Node{
		Type:   NumberType,
		Number: text,
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

// NumberText returns the JSON text of a number node.
func (y *Node) NumberText() string {
	if y.Type != NumberType {
		return ""
	}
	switch {
	case y.Number != "":
		return y.Number
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
	default:
		return "0"
	}
}

// Rat returns the exact value of a number node.
func (y *Node) Rat() (*big.Rat, bool) {
	if y.Type != NumberType {
		return nil, false
	}
	if y.Number == "" && y.Int64 != nil {
		return new(big.Rat).SetInt64(*y.Int64), true
	}
	if y.Number == "" && y.Float64 != nil {
		return new(big.Rat).SetFloat64(*y.Float64), true
	}
	return new(big.Rat).SetString(y.NumberText())
}

// BigInt returns the integer part of a number node, truncated toward zero.
func (y *Node) BigInt() (*big.Int, bool) {
	r, ok := y.Rat()
	if !ok {
		return nil, false
	}
	if r.IsInt() {
		return new(big.Int).Set(r.Num()), true
	}
	return new(big.Int).Quo(r.Num(), r.Denom()), true
}

// IsIntegral reports whether a number node has no fractional part.
func (y *Node) IsIntegral() bool {
	r, ok := y.Rat()
	return ok && r.IsInt()
}

// Int64Value returns the number truncated to an int64.  ok is false when
// the node is not a number or its integer part overflows.
func (y *Node) Int64Value() (int64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return *y.Int64, true
	}
	bi, ok := y.BigInt()
	if !ok || !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// Float64Value returns the nearest float64 of a number node.
func (y *Node) Float64Value() (float64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	r, ok := y.Rat()
	if !ok {
		return 0, false
	}
	f, _ := r.Float64()
	return f, true
}
