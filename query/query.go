// Package query selects values from documents with RFC 9535 JSONPath
// expressions such as "$.store.book[?@.price < 10].title".
package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/ir"

	"github.com/theory/jsonpath"
)

var ErrQuery = errors.New("query error")

// Query is a parsed JSONPath expression.
type Query struct {
	path *jsonpath.Path
}

// Parse parses a JSONPath expression.
func Parse(expr string) (*Query, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrQuery)
	}
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrQuery, expr, err)
	}
	return &Query{path: p}, nil
}

func (q *Query) String() string {
	return q.path.String()
}

// Select returns the values q selects from doc in document order.  A
// sentinel doc selects from null.
func (q *Query) Select(doc boxed.Value) ([]boxed.Value, error) {
	data, err := toJSONAny(doc)
	if err != nil {
		return nil, err
	}
	nodes := q.path.Select(data)
	res := make([]boxed.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := ir.FromAny(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}
		res = append(res, boxed.Of(v))
	}
	return res, nil
}

// First returns the first value q selects from doc, or HadMissingLiteral.
func (q *Query) First(doc boxed.Value) (boxed.Value, error) {
	vs, err := q.Select(doc)
	if err != nil {
		return boxed.Value{}, err
	}
	if len(vs) == 0 {
		return boxed.HadMissingLiteral, nil
	}
	return vs[0], nil
}

// Select parses expr and selects from doc.
func Select(doc boxed.Value, expr string) ([]boxed.Value, error) {
	q, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return q.Select(doc)
}

// toJSONAny returns doc in the form encoding/json decodes to, which is the
// form jsonpath filters compare against.
func toJSONAny(doc boxed.Value) (any, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var res any
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	return res, nil
}
