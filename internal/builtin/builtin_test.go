// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherlisp/lispy/internal/env"
	"github.com/gopherlisp/lispy/internal/eval"
	"github.com/gopherlisp/lispy/internal/pkgreg"
	"github.com/gopherlisp/lispy/internal/reader"
)

func evalString(t *testing.T, src string) string {
	t.Helper()
	root := env.NewRoot()
	RegisterAll(root, pkgreg.NewRegistry())
	v, err := reader.ReadOne(strings.NewReader(src), "<test>")
	require.NoError(t, err)
	return eval.Eval(root, v).String()
}

// TestArithmeticFold verifies spec.md §8's "(+ 1 2 3)" -> "6" scenario.
func TestArithmeticFold(t *testing.T) {
	assert.Equal(t, "6", evalString(t, "(+ 1 2 3)"))
}

// TestFloatFixedPrecision verifies spec.md §8's "(+ 1.0 2 3)" -> "6.000000"
// scenario, matching the original's `%lf` printf conversion.
func TestFloatFixedPrecision(t *testing.T) {
	assert.Equal(t, "6.000000", evalString(t, "(+ 1.0 2 3)"))
}

// TestDivisionByZero verifies §8's "(/ 1 0)" -> "Error: Division By Zero."
func TestDivisionByZero(t *testing.T) {
	assert.Equal(t, "Error: Division By Zero.", evalString(t, "(/ 1 0)"))
}

// TestUnaryReciprocalBug locks in §9's documented unary '/' integer-division
// quirk: (/ 5) computes 1/5 in integer arithmetic, yielding 0.
func TestUnaryReciprocalBug(t *testing.T) {
	assert.Equal(t, "0", evalString(t, "(/ 5)"))
}

// TestBignumCompareInverted verifies §8's
// "(cmp-bnum (to-bnum 5) (to-bnum 7))" -> "1" scenario.
func TestBignumCompareInverted(t *testing.T) {
	assert.Equal(t, "1", evalString(t, "(cmp-bnum (to-bnum 5) (to-bnum 7))"))
	assert.Equal(t, "-1", evalString(t, "(cmp-bnum (to-bnum 7) (to-bnum 5))"))
}

func TestLambdaPartialApplication(t *testing.T) {
	root := env.NewRoot()
	RegisterAll(root, pkgreg.NewRegistry())

	def, err := reader.ReadOne(strings.NewReader("(def {add} (\\ {x y} {+ x y}))"), "<test>")
	require.NoError(t, err)
	eval.Eval(root, def)

	partial, err := reader.ReadOne(strings.NewReader("(add 1)"), "<test>")
	require.NoError(t, err)
	r := eval.Eval(root, partial)
	assert.Contains(t, r.String(), "\\")

	full, err := reader.ReadOne(strings.NewReader("((add 1) 2)"), "<test>")
	require.NoError(t, err)
	assert.Equal(t, "3", eval.Eval(root, full).String())
}

func TestVariadicRestBinding(t *testing.T) {
	root := env.NewRoot()
	RegisterAll(root, pkgreg.NewRegistry())

	def, err := reader.ReadOne(strings.NewReader("(def {f} (\\ {x & xs} {xs}))"), "<test>")
	require.NoError(t, err)
	eval.Eval(root, def)

	call, err := reader.ReadOne(strings.NewReader("(f 1 2 3)"), "<test>")
	require.NoError(t, err)
	assert.Equal(t, "{2 3}", eval.Eval(root, call).String())
}

func TestQuoteIsInert(t *testing.T) {
	assert.Equal(t, "{+ 1 2}", evalString(t, "{+ 1 2}"))
}

func TestIfBranching(t *testing.T) {
	assert.Equal(t, "5", evalString(t, "(if (> 3 2) {5} {6})"))
	assert.Equal(t, "6", evalString(t, "(if (> 2 3) {5} {6})"))
}

func TestListOps(t *testing.T) {
	assert.Equal(t, "{1 2 3}", evalString(t, "(list 1 2 3)"))
	assert.Equal(t, "{1}", evalString(t, "(head {1 2 3})"))
	assert.Equal(t, "{2 3}", evalString(t, "(tail {1 2 3})"))
	assert.Equal(t, "{1 2 3 4}", evalString(t, "(join {1 2} {3 4})"))
}
