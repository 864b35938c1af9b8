// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package eval implements the evaluator and applier of spec.md §4.5/§4.6: a
// direct, single-threaded recursive tree walk with short-circuit error
// propagation. Generalized from sxpf/eval's Engine, dropping its
// Parse/Rework/Compute phases and tail-call trampoline — those implement
// tail-call optimization, an explicit spec.md Non-goal — in favor of plain
// Go recursion, matching the original C `lval_eval`/`lval_eval_sexpr`.
package eval

import (
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/value"
)

// Eval evaluates v within e, per §4.6.
func Eval(e *env.Environment, v value.Value) value.Value {
	switch t := v.(type) {
	case value.Sym:
		return e.Get(t)
	case *value.SExpr:
		return evalSExpr(e, t)
	default:
		return v
	}
}

func evalSExpr(e *env.Environment, s *value.SExpr) value.Value {
	children := make([]value.Value, len(s.Children))
	for i, c := range s.Children {
		r := Eval(e, c)
		if err, ok := r.(*value.Err); ok {
			return err
		}
		children[i] = r
	}
	switch len(children) {
	case 0:
		return &value.SExpr{}
	case 1:
		return children[0]
	}
	fn := children[0]
	args := children[1:]
	return Call(e, fn, args)
}

// Call applies fn (which must be a Fun) to args, per §4.5.
func Call(e *env.Environment, fn value.Value, args []value.Value) value.Value {
	f, ok := fn.(*value.Fun)
	if !ok {
		return value.MakeErr("S-Expression starts with incorrect type. Got %T, Expected Function.", fn)
	}
	if f.IsBuiltin() {
		return f.Native(e, &value.QExpr{Children: args})
	}
	return applyLambda(e, f, args)
}

// applyLambda implements §4.5's formal/argument consumption algorithm,
// including the "&rest" variadic binding and partial application.
func applyLambda(callerEnv *env.Environment, f *value.Fun, args []value.Value) value.Value {
	lambda := f.Copy().(*value.Fun)
	callEnv, ok := lambda.Env.(*env.Environment)
	if !ok {
		callEnv = env.NewRoot()
	} else {
		callEnv = callEnv.Copy().(*env.Environment)
	}

	formals := lambda.Formals.Children
	i := 0
	for len(args) > 0 {
		if len(formals) == 0 {
			return value.MakeErr("Function passed too many arguments. Got %d, Expected %d.", len(args)+i, i)
		}
		sym := formals[0].(value.Sym)
		if sym == "&" {
			if len(formals) != 2 {
				return value.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			restSym := formals[1].(value.Sym)
			rest := &value.QExpr{Children: append([]value.Value(nil), args...)}
			callEnv.Put(restSym, rest)
			formals = nil
			args = nil
			break
		}
		callEnv.Put(sym, args[0])
		formals = formals[1:]
		args = args[1:]
		i++
	}

	if len(formals) > 0 && formals[0] == value.Sym("&") {
		if len(formals) != 2 {
			return value.MakeErr("Function format invalid. Symbol '&' not followed by single symbol.")
		}
		restSym := formals[1].(value.Sym)
		callEnv.Put(restSym, &value.QExpr{})
		formals = nil
	}

	if len(formals) == 0 {
		callEnv.SetParent(callerEnv)
		body := make([]value.Value, len(lambda.Body.Children))
		copy(body, lambda.Body.Children)
		return Eval(callEnv, &value.SExpr{Children: body})
	}

	lambda.Formals = &value.QExpr{Children: formals}
	lambda.Env = callEnv
	return lambda
}
