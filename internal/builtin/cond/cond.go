// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package cond implements spec.md §4.7's control-flow builtins: if, ordered
// comparisons, and boolean connectives. Grounded on sxpf/builtins/cond/
// cond.go's IfS/If2Expr/If3Expr shape, simplified to the spec's two/three
// argument `if` (condition, then-branch QExpr, optional else-branch QExpr).
package cond

import (
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/eval"
	"github.com/gopherlisp/lispy/internal/value"
)

// Register binds the control-flow builtins into e.
func Register(e *env.Environment) {
	e.Def("if", value.MakeBuiltin("if", ifFn))
	e.Def(">", value.MakeBuiltin(">", ord(func(a, b float64) bool { return a > b })))
	e.Def("<", value.MakeBuiltin("<", ord(func(a, b float64) bool { return a < b })))
	e.Def(">=", value.MakeBuiltin(">=", ord(func(a, b float64) bool { return a >= b })))
	e.Def("<=", value.MakeBuiltin("<=", ord(func(a, b float64) bool { return a <= b })))
	e.Def("||", value.MakeBuiltin("||", or))
	e.Def("&&", value.MakeBuiltin("&&", and))
	e.Def("!", value.MakeBuiltin("!", not))
}

func ifFn(callerEnv value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 && len(args.Children) != 3 {
		return value.MakeErr("Function 'if' passed %d arguments, expected 2 or 3.", len(args.Children))
	}
	then, ok := args.Children[1].(*value.QExpr)
	if !ok {
		return value.MakeErr("Function 'if' passed incorrect type for branch.")
	}
	e, ok := callerEnv.(*env.Environment)
	if !ok {
		return value.MakeErr("internal error: environment of unexpected type")
	}
	if value.IsTruthy(args.Children[0]) {
		return eval.Eval(e, &value.SExpr{Children: then.Children})
	}
	if len(args.Children) == 3 {
		els, ok := args.Children[2].(*value.QExpr)
		if !ok {
			return value.MakeErr("Function 'if' passed incorrect type for branch.")
		}
		return eval.Eval(e, &value.SExpr{Children: els.Children})
	}
	return &value.QExpr{}
}

func asFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case value.IntNum:
		return float64(n), true
	case value.FloatNum:
		return float64(n), true
	default:
		return 0, false
	}
}

func ord(cmp func(a, b float64) bool) value.Builtin {
	return func(_ value.Env, args *value.QExpr) value.Value {
		if len(args.Children) != 2 {
			return value.MakeErr("Function passed %d arguments, expected 2.", len(args.Children))
		}
		a, ok1 := asFloat(args.Children[0])
		b, ok2 := asFloat(args.Children[1])
		if !ok1 || !ok2 {
			return value.MakeErr("Cannot compare non-number!")
		}
		return value.MakeBoolean(cmp(a, b))
	}
}

func or(_ value.Env, args *value.QExpr) value.Value {
	for _, c := range args.Children {
		if value.IsTruthy(c) {
			return value.MakeBoolean(true)
		}
	}
	return value.MakeBoolean(false)
}

func and(_ value.Env, args *value.QExpr) value.Value {
	for _, c := range args.Children {
		if !value.IsTruthy(c) {
			return value.MakeBoolean(false)
		}
	}
	return value.MakeBoolean(true)
}

func not(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function '!' passed %d arguments, expected 1.", len(args.Children))
	}
	return value.MakeBoolean(!value.IsTruthy(args.Children[0]))
}
