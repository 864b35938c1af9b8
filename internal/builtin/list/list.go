// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package list implements spec.md §4.7's QExpr manipulation builtins
// (list, head, tail, join, eval, cons, len, init). Grounded on
// sxpf/builtins/list/list.go's per-operation split, generalized from
// teacher's cons-pair walking to slice indexing/slicing and using
// samber/lo's Map helper in eval, the way Tangerg-lynx's pkg module
// leans on lo for its own collection plumbing.
package list

import (
	"github.com/samber/lo"

	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/eval"
	"github.com/gopherlisp/lispy/internal/value"
)

// Register binds every list builtin into e.
func Register(e *env.Environment) {
	e.Def("list", value.MakeBuiltin("list", listFn))
	e.Def("head", value.MakeBuiltin("head", head))
	e.Def("tail", value.MakeBuiltin("tail", tail))
	e.Def("init", value.MakeBuiltin("init", initFn))
	e.Def("join", value.MakeBuiltin("join", join))
	e.Def("cons", value.MakeBuiltin("cons", cons))
	e.Def("len", value.MakeBuiltin("len", lenFn))
	e.Def("eval", value.MakeBuiltin("eval", evalFn))
}

func asQExpr(v value.Value) (*value.QExpr, bool) {
	q, ok := v.(*value.QExpr)
	return q, ok
}

func listFn(_ value.Env, args *value.QExpr) value.Value {
	return &value.QExpr{Children: append([]value.Value(nil), args.Children...)}
}

func head(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'head' passed %d arguments, expected 1.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[0])
	if !ok {
		return value.MakeErr("Function 'head' passed incorrect type.")
	}
	if len(q.Children) == 0 {
		return value.MakeErr("Function 'head' passed {}!")
	}
	return &value.QExpr{Children: []value.Value{q.Children[0]}}
}

func tail(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'tail' passed %d arguments, expected 1.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[0])
	if !ok {
		return value.MakeErr("Function 'tail' passed incorrect type.")
	}
	if len(q.Children) == 0 {
		return value.MakeErr("Function 'tail' passed {}!")
	}
	return &value.QExpr{Children: append([]value.Value(nil), q.Children[1:]...)}
}

func initFn(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'init' passed %d arguments, expected 1.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[0])
	if !ok {
		return value.MakeErr("Function 'init' passed incorrect type.")
	}
	if len(q.Children) == 0 {
		return value.MakeErr("Function 'init' passed {}!")
	}
	return &value.QExpr{Children: append([]value.Value(nil), q.Children[:len(q.Children)-1]...)}
}

func join(_ value.Env, args *value.QExpr) value.Value {
	out := []value.Value{}
	for _, c := range args.Children {
		q, ok := asQExpr(c)
		if !ok {
			return value.MakeErr("Function 'join' passed incorrect type.")
		}
		out = append(out, q.Children...)
	}
	return &value.QExpr{Children: out}
}

func cons(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 {
		return value.MakeErr("Function 'cons' passed %d arguments, expected 2.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[1])
	if !ok {
		return value.MakeErr("Function 'cons' passed incorrect type.")
	}
	out := append([]value.Value{args.Children[0]}, q.Children...)
	return &value.QExpr{Children: out}
}

func lenFn(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'len' passed %d arguments, expected 1.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[0])
	if !ok {
		return value.MakeErr("Function 'len' passed incorrect type.")
	}
	return value.IntNum(len(q.Children))
}

// evalFn converts a QExpr into an SExpr and evaluates it in the calling
// environment, per §4.7.
func evalFn(callerEnv value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'eval' passed %d arguments, expected 1.", len(args.Children))
	}
	q, ok := asQExpr(args.Children[0])
	if !ok {
		return value.MakeErr("Function 'eval' passed incorrect type.")
	}
	e, ok := callerEnv.(*env.Environment)
	if !ok {
		return value.MakeErr("internal error: environment of unexpected type")
	}
	children := lo.Map(q.Children, func(v value.Value, _ int) value.Value { return v })
	return eval.Eval(e, &value.SExpr{Children: children})
}
