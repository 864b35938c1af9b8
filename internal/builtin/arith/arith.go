// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package arith implements spec.md §4.4's numeric operators: the generic
// `op` fold (+ - * / ^ %) over a float64 accumulator (faithfully preserving
// the precision loss above 2^53 and the unary-operator quirks described in
// §9), plus the bignum builtins (addb/subb/mulb/divb/to-bnum/cmp-bnum).
// Grounded on sxpf/builtins/number/number.go's per-operator builtin split,
// generalized to fold over value.Value instead of sxpf.Number.
package arith

import (
	"math"

	"github.com/spf13/cast"

	"github.com/gopherlisp/lispy/internal/bignum"
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/value"
)

// Register binds every arithmetic builtin into e.
func Register(e *env.Environment) {
	e.Def("+", value.MakeBuiltin("+", op("+")))
	e.Def("-", value.MakeBuiltin("-", op("-")))
	e.Def("*", value.MakeBuiltin("*", op("*")))
	e.Def("/", value.MakeBuiltin("/", op("/")))
	e.Def("^", value.MakeBuiltin("^", op("^")))
	e.Def("%", value.MakeBuiltin("%", op("%")))

	e.Def("addb", value.MakeBuiltin("addb", bigFold(bignum.Bignum.Add)))
	e.Def("subb", value.MakeBuiltin("subb", bigFold(bignum.Bignum.Sub)))
	e.Def("mulb", value.MakeBuiltin("mulb", bigFold(bignum.Bignum.Mul)))
	e.Def("divb", value.MakeBuiltin("divb", bigDiv))
	e.Def("to-bnum", value.MakeBuiltin("to-bnum", toBnum))
	e.Def("cmp-bnum", value.MakeBuiltin("cmp-bnum", cmpBnum))
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.IntNum:
		return float64(n), true
	case value.FloatNum:
		return float64(n), true
	default:
		f, err := cast.ToFloat64E(v.String())
		return f, err == nil
	}
}

func anyFloat(args []value.Value) bool {
	for _, a := range args {
		if _, ok := a.(value.FloatNum); ok {
			return true
		}
	}
	return false
}

// op implements §4.4's `op` semantics: unary '-' negates, unary '/'
// computes the reciprocal via *integer* division when the sole operand is
// an IntNum (the documented "bug" of original_source's builtin_op, kept
// faithfully — see DESIGN.md Open Question (a)), unary '^' is 2^x;
// otherwise a left fold over a float64 accumulator.
func op(sym string) value.Builtin {
	return func(_ value.Env, args *value.QExpr) value.Value {
		children := args.Children
		for _, c := range children {
			if err, ok := c.(*value.Err); ok {
				return err
			}
			if _, ok := c.(value.IntNum); ok {
				continue
			}
			if _, ok := c.(value.FloatNum); ok {
				continue
			}
			return value.MakeErr("Cannot operate on non-number!")
		}
		if len(children) == 1 {
			switch sym {
			case "-":
				return negate(children[0])
			case "/":
				return reciprocal(children[0])
			case "^":
				f, _ := asFloat(children[0])
				return value.FloatNum(math.Pow(2, f))
			}
		}
		if len(children) == 0 {
			return value.MakeErr("Function '%s' passed no arguments.", sym)
		}
		acc, _ := asFloat(children[0])
		isFloat := anyFloat(children)
		for _, c := range children[1:] {
			x, _ := asFloat(c)
			switch sym {
			case "+":
				acc += x
			case "-":
				acc -= x
			case "*":
				acc *= x
			case "/":
				if x == 0 {
					return value.MakeErr("Division By Zero.")
				}
				acc /= x
			case "^":
				acc = math.Pow(acc, x)
			case "%":
				if x == 0 {
					return value.MakeErr("Division By Zero.")
				}
				acc = math.Mod(acc, x)
			}
		}
		if isFloat {
			return value.FloatNum(acc)
		}
		return value.IntNum(int64(acc))
	}
}

func negate(v value.Value) value.Value {
	switch n := v.(type) {
	case value.IntNum:
		return -n
	case value.FloatNum:
		return -n
	default:
		return value.MakeErr("Cannot operate on non-number!")
	}
}

// reciprocal reproduces builtin_op's unary '/' quirk: for an IntNum operand
// the division is performed in integer arithmetic (1/x truncated), which is
// 0 for every |x| > 1 — deliberately not "fixed" to 1.0/x.
func reciprocal(v value.Value) value.Value {
	switch n := v.(type) {
	case value.IntNum:
		if n == 0 {
			return value.MakeErr("Division By Zero.")
		}
		return value.IntNum(1 / int64(n))
	case value.FloatNum:
		if n == 0 {
			return value.MakeErr("Division By Zero.")
		}
		return value.FloatNum(1.0 / float64(n))
	default:
		return value.MakeErr("Cannot operate on non-number!")
	}
}

func toBignum(v value.Value) (bignum.Bignum, bool) {
	switch n := v.(type) {
	case *value.BigNum:
		return n.N, true
	case value.IntNum:
		return bignum.FromInt64(int64(n)), true
	default:
		return bignum.Bignum{}, false
	}
}

func bigFold(fn func(a, b bignum.Bignum) bignum.Bignum) value.Builtin {
	return func(_ value.Env, args *value.QExpr) value.Value {
		if len(args.Children) == 0 {
			return value.MakeErr("Function passed no arguments.")
		}
		acc, ok := toBignum(args.Children[0])
		if !ok {
			return value.MakeErr("Cannot operate on non-bignum!")
		}
		for _, c := range args.Children[1:] {
			b, ok := toBignum(c)
			if !ok {
				return value.MakeErr("Cannot operate on non-bignum!")
			}
			acc = fn(acc, b)
		}
		return value.MakeBigNum(acc)
	}
}

// bigDiv is divb: bignum.Div does not guard against a zero divisor, so any
// zero divisor is rejected with "Division By Zero." before folding.
func bigDiv(e value.Env, args *value.QExpr) value.Value {
	for i, c := range args.Children {
		if b, ok := toBignum(c); ok && i > 0 && b.IsZero() {
			return value.MakeErr("Division By Zero.")
		}
	}
	return bigFold(bignum.Bignum.Div)(e, args)
}

func toBnum(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'to-bnum' passed %d arguments, expected 1.", len(args.Children))
	}
	b, ok := toBignum(args.Children[0])
	if !ok {
		return value.MakeErr("Cannot operate on non-number!")
	}
	return value.MakeBigNum(b)
}

// cmpBnum preserves §9's documented inverted compare convention.
func cmpBnum(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 {
		return value.MakeErr("Function 'cmp-bnum' passed %d arguments, expected 2.", len(args.Children))
	}
	a, ok1 := toBignum(args.Children[0])
	b, ok2 := toBignum(args.Children[1])
	if !ok1 || !ok2 {
		return value.MakeErr("Cannot operate on non-bignum!")
	}
	return value.IntNum(a.Compare(b))
}
