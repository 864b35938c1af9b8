// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package equiv implements spec.md §4.8's structural equality builtins
// (== and !=). Grounded on sxpf/builtins/equiv/equiv.go.
package equiv

import (
	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/value"
)

// Register binds the equality builtins into e.
func Register(e *env.Environment) {
	e.Def("==", value.MakeBuiltin("==", eq))
	e.Def("!=", value.MakeBuiltin("!=", neq))
}

func eq(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 {
		return value.MakeErr("Function '==' passed %d arguments, expected 2.", len(args.Children))
	}
	return value.MakeBoolean(args.Children[0].IsEqual(args.Children[1]))
}

func neq(_ value.Env, args *value.QExpr) value.Value {
	if len(args.Children) != 2 {
		return value.MakeErr("Function '!=' passed %d arguments, expected 2.", len(args.Children))
	}
	return value.MakeBoolean(!args.Children[0].IsEqual(args.Children[1]))
}
