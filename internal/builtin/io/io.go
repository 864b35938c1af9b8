// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package io implements spec.md §4.7's I/O and host-interaction builtins:
// load, print, error, exit, and the supplemented readline/printenv carried
// forward from original_source/Project3/main.c. Grounded on
// sxpf/cmd/main.go's file-loading loop and sxpf/builtins/env/env.go.
package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/eval"
	"github.com/gopherlisp/lispy/internal/reader"
	"github.com/gopherlisp/lispy/internal/value"
)

// ExitRequest is panicked by the `exit` builtin and recovered by cmd/lispy,
// mirroring how the original C REPL's exit builtin calls the C library's
// exit() directly; Go code cannot call os.Exit mid-evaluation without
// skipping deferred cleanup, so a typed panic stands in for it.
type ExitRequest struct{ Code int }

// Register binds the I/O builtins into e.
func Register(e *env.Environment) {
	e.Def("load", value.MakeBuiltin("load", loadFn))
	e.Def("print", value.MakeBuiltin("print", printFn))
	e.Def("error", value.MakeBuiltin("error", errorFn))
	e.Def("exit", value.MakeBuiltin("exit", exitFn))
	e.Def("show", value.MakeBuiltin("show", showFn))
	e.Def("readline", value.MakeBuiltin("readline", readlineFn))
	e.Def("printenv", value.MakeBuiltin("printenv", printenvFn))
}

func loadFn(callerEnv value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'load' passed %d arguments, expected 1.", len(args.Children))
	}
	s, ok := args.Children[0].(value.Str)
	if !ok {
		return value.MakeErr("Function 'load' passed incorrect type.")
	}
	f, err := os.Open(string(s))
	if err != nil {
		return value.MakeErr("Could not load library %s", string(s))
	}
	defer f.Close()
	exprs, err := reader.ReadAll(f, string(s))
	if err != nil {
		return value.MakeErr("Could not parse library %s: %s", string(s), err)
	}
	e, ok := callerEnv.(*env.Environment)
	if !ok {
		return value.MakeErr("internal error: environment of unexpected type")
	}
	for _, x := range exprs {
		r := eval.Eval(e, x)
		if errv, ok := r.(*value.Err); ok {
			fmt.Fprintln(os.Stderr, errv.String())
		}
	}
	return &value.QExpr{}
}

func printFn(_ value.Env, args *value.QExpr) value.Value {
	for i, c := range args.Children {
		if i > 0 {
			fmt.Print(" ")
		}
		_, _ = value.Print(os.Stdout, c)
	}
	fmt.Println()
	return &value.QExpr{}
}

func errorFn(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 1 {
		return value.MakeErr("Function 'error' passed %d arguments, expected 1.", len(args.Children))
	}
	s, ok := args.Children[0].(value.Str)
	if !ok {
		return value.MakeErr("Function 'error' passed incorrect type.")
	}
	return value.MakeErr("%s", string(s))
}

func exitFn(_ value.Env, args *value.QExpr) value.Value {
	code := 0
	if len(args.Children) == 1 {
		if n, ok := args.Children[0].(value.IntNum); ok {
			code = int(n)
		}
	}
	panic(ExitRequest{Code: code})
}

func showFn(_ value.Env, args *value.QExpr) value.Value {
	for _, c := range args.Children {
		if s, ok := c.(value.Str); ok {
			fmt.Println(string(s))
			continue
		}
		fmt.Println(c.String())
	}
	return &value.QExpr{}
}

// readlineFn reads a line from stdin after printing an optional prompt.
// When the prompt argument is not a Str, the original C builtin leaks its
// scratch prompt buffer rather than validating the argument; this
// implementation preserves the observable effect (the non-string argument
// is silently ignored rather than rejected with a type error) per §9,
// without literally reproducing a C memory leak in Go.
func readlineFn(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) >= 1 {
		if s, ok := args.Children[0].(value.Str); ok {
			fmt.Print(string(s))
		}
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return value.MakeErr("readline: %s", err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return value.Str(line)
}

func printenvFn(callerEnv value.Env, _ *value.QExpr) value.Value {
	e, ok := callerEnv.(*env.Environment)
	if !ok {
		return value.MakeErr("internal error: environment of unexpected type")
	}
	for _, n := range e.Names() {
		v, _ := e.Lookup(n)
		fmt.Printf("%s %s\n", n, v.String())
	}
	return &value.QExpr{}
}
