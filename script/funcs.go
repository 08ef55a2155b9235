package script

import (
	"github.com/signadot/boxed-json/boxed"
	"github.com/signadot/boxed-json/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(root boxed.Value) []expr.Option {
	eval := func(params []any) (boxed.Value, error) {
		return boxed.Eval(root, params[0].(string))
	}
	test := func(name string, f func(boxed.Value) bool) expr.Option {
		return expr.Function(name, func(params ...any) (any, error) {
			v, err := eval(params)
			if err != nil {
				return nil, err
			}
			return f(v), nil
		},
			new(func(string) bool))
	}
	return []expr.Option{
		expr.Function("path", func(params ...any) (any, error) {
			v, err := eval(params)
			if err != nil {
				return nil, err
			}
			if !v.IsValid() {
				return nil, nil
			}
			return ir.ToAny(v.Unbox()), nil
		},
			new(func(string) any)),
		expr.Function("kind", func(params ...any) (any, error) {
			v, err := eval(params)
			if err != nil {
				return nil, err
			}
			if !v.IsValid() {
				return v.ErrKind().String(), nil
			}
			return v.Kind().String(), nil
		},
			new(func(string) string)),
		test("valid", boxed.Value.IsValid),
		test("null", boxed.Value.HadNull),
		test("missing", boxed.Value.HadMissing),
		test("invalid", boxed.Value.HadInvalid),
	}
}
