// Copyright (c) present lispy contributors
//
// lispy is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2

package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSub(t *testing.T) {
	a := FromInt64(12345)
	b := FromInt64(6789)
	assert.Equal(t, "19134", a.Add(b).String())
	assert.Equal(t, "5556", a.Sub(b).String())
}

func TestMulDiv(t *testing.T) {
	a := FromInt64(123)
	b := FromInt64(456)
	assert.Equal(t, "56088", a.Mul(b).String())

	c := FromInt64(100)
	d := FromInt64(7)
	assert.Equal(t, "14", c.Div(d).String())
}

// TestMulCarryIntoNewDigit locks in a fix for a carry-counting bug where the
// leading single-digit product carrying into a new place value was dropped
// (e.g. 5x5 computed as "5" instead of "25").
func TestMulCarryIntoNewDigit(t *testing.T) {
	assert.Equal(t, "25", FromInt64(5).Mul(FromInt64(5)).String())
	assert.Equal(t, "9801", FromInt64(99).Mul(FromInt64(99)).String())
}

func TestNegative(t *testing.T) {
	a := FromInt64(-5)
	b := FromInt64(3)
	assert.Equal(t, "-2", a.Add(b).String())
	assert.Equal(t, "-8", a.Sub(b).String())
}

// TestCompareInvertedConvention locks in the deliberately preserved
// inverted-sign compare behaviour described in spec.md §9: Compare returns
// +1 when a<b and -1 when a>b.
func TestCompareInvertedConvention(t *testing.T) {
	five := FromInt64(5)
	seven := FromInt64(7)
	assert.Equal(t, 1, five.Compare(seven))
	assert.Equal(t, -1, seven.Compare(five))
	assert.Equal(t, 0, five.Compare(FromInt64(5)))
}

func TestZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.Equal(t, "0", Zero().String())
}
