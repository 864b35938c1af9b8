// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntFloatEquality(t *testing.T) {
	assert.True(t, IntNum(3).IsEqual(FloatNum(3.0)))
	assert.False(t, IntNum(3).IsEqual(FloatNum(3.1)))
}

func TestStrPrintEscaping(t *testing.T) {
	s := Str("a\"b\nc")
	assert.Equal(t, `"a\"b\nc"`, s.String())
}

func TestSExprPrinter(t *testing.T) {
	s := MakeSExpr(IntNum(1), Sym("foo"), MakeQExpr(IntNum(2)))
	assert.Equal(t, "(1 foo {2})", s.String())
}

func TestCopyIsDeep(t *testing.T) {
	q := MakeQExpr(MakeQExpr(IntNum(1)))
	cp := q.Copy().(*QExpr)
	cp.Children[0].(*QExpr).Children[0] = IntNum(99)
	assert.Equal(t, IntNum(1), q.Children[0].(*QExpr).Children[0])
}

func TestErrPrinter(t *testing.T) {
	e := MakeErr("Division By Zero.")
	assert.Equal(t, "Error: Division By Zero.", e.String())
}

func TestBuiltinPrinter(t *testing.T) {
	f := MakeBuiltin("+", func(Env, *QExpr) Value { return nil })
	assert.Contains(t, f.String(), "<builtin@")
}
