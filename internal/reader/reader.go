// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

// Package reader implements spec.md §4.2: converting a tagged parse tree
// (produced by internal/parsetree) into Value, per the fixed tag table.
package reader

import (
	"io"
	"strconv"

	"github.com/gopherlisp/lispy/internal/parsetree"
	"github.com/gopherlisp/lispy/internal/value"
)

// ReadAll parses and converts every top-level expression in r, stopping at
// EOF. name is used for error positions (typically a filename or "<repl>").
func ReadAll(r io.Reader, name string) ([]value.Value, error) {
	p := parsetree.NewParser(r, name)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, 0, len(prog.Children))
	for _, c := range prog.Children {
		out = append(out, FromNode(c))
	}
	return out, nil
}

// ReadOne parses and converts a single top-level expression, or returns
// io.EOF when the stream holds no further expression.
func ReadOne(r io.Reader, name string) (value.Value, error) {
	p := parsetree.NewParser(r, name)
	n, err := p.ParseOne()
	if err != nil {
		return nil, err
	}
	return FromNode(n), nil
}

// FromNode converts a single tagged node into a Value, per spec.md §4.2's
// table: numbI -> IntNum, numbF -> FloatNum, symbol -> Sym, string -> Str,
// sexpr -> SExpr (recursively), qexpr -> QExpr (recursively).
func FromNode(n *parsetree.Node) value.Value {
	switch n.Tag {
	case parsetree.TagNumbI:
		i, err := strconv.ParseInt(n.Contents, 10, 64)
		if err != nil {
			return value.MakeErr("invalid integer literal %q", n.Contents)
		}
		return value.IntNum(i)
	case parsetree.TagNumbF:
		f, err := strconv.ParseFloat(n.Contents, 64)
		if err != nil {
			return value.MakeErr("invalid float literal %q", n.Contents)
		}
		return value.FloatNum(f)
	case parsetree.TagSymbol:
		return value.Sym(n.Contents)
	case parsetree.TagString:
		return value.Str(n.Contents)
	case parsetree.TagSExpr:
		return &value.SExpr{Children: fromChildren(n.Children)}
	case parsetree.TagQExpr:
		return &value.QExpr{Children: fromChildren(n.Children)}
	default:
		return value.MakeErr("unrecognized parse node tag %q", n.Tag)
	}
}

func fromChildren(nodes []*parsetree.Node) []value.Value {
	out := make([]value.Value, len(nodes))
	for i, c := range nodes {
		out[i] = FromNode(c)
	}
	return out
}
