// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"errors"
	"sync"
	"testing"

	"github.com/consensys/go-unipoly/pkg/field"
	"github.com/consensys/go-unipoly/pkg/field/gf251"
	"github.com/consensys/go-unipoly/pkg/field/rational"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Add_01(t *testing.T) {
	checkRat(t, rat(1, 2, 3, 4).Add(rat(2, 2, 2, 2)), 3, 4, 5, 6)
}

func Test_Add_02(t *testing.T) {
	checkRat(t, rat(1, 2, 3, 4).Add(rat(1, 2)), 2, 4, 3, 4)
	checkRat(t, rat(1, 2).Add(rat(1, 2, 3, 4)), 2, 4, 3, 4)
}

func Test_Add_03(t *testing.T) {
	// Leading terms cancel
	checkRat(t, rat(1, 2, 1).Add(rat(0, 0, -1)), 1, 2)
	checkRat(t, rat(1, 2, 1).Add(rat(-1, -2, -1)), 0)
}

func Test_Sub_01(t *testing.T) {
	checkRat(t, rat(1, 2, 3, 4).Sub(rat(1, 2)), 0, 0, 3, 4)
}

func Test_Sub_02(t *testing.T) {
	p := rat(5, -7, 0, 9)
	require.True(t, p.Sub(p).IsZero())
}

func Test_Neg_01(t *testing.T) {
	checkRat(t, rat(1, -2, 0, 4).Neg(), -1, 2, 0, -4)
	checkRat(t, rat().Neg(), 0)
}

func Test_Mul_01(t *testing.T) {
	checkRat(t, rat(1, 2, 3).Mul(rat(2)), 2, 4, 6)
}

func Test_Mul_02(t *testing.T) {
	// (1 + 2x + 3x²)(2 + 3x) = 2 + 7x + 12x² + 9x³
	checkRat(t, rat(1, 2, 3).Mul(rat(2, 3)), 2, 7, 12, 9)
}

func Test_Mul_03(t *testing.T) {
	checkRat(t, rat(1, 2, 3).Mul(rat()), 0)
	checkRat(t, rat().Mul(rat(1, 2, 3)), 0)
}

func Test_Mul_04(t *testing.T) {
	// (x - 1)(x + 1) = x² - 1
	checkRat(t, rat(-1, 1).Mul(rat(1, 1)), -1, 0, 1)
}

func Test_MulScalar_01(t *testing.T) {
	checkRat(t, rat(1, 2, 3).MulScalar(rational.FromInt(-2)), -2, -4, -6)
	checkRat(t, rat(1, 2, 3).MulScalar(rational.FromInt(0)), 0)
}

func Test_New_01(t *testing.T) {
	checkRat(t, rat(0, 2, 3, 5, 0, 0, 6, 0, 0), 0, 2, 3, 5, 0, 0, 6)
}

func Test_New_02(t *testing.T) {
	checkRat(t, rat(), 0)
	checkRat(t, rat(0, 0, 0), 0)
	require.True(t, rat(0, 0, 0).IsZero())
	require.Equal(t, uint(1), rat(0, 0, 0).Len())
}

func Test_New_03(t *testing.T) {
	// Input is copied, not retained.
	coeffs := []rational.Element{rational.FromInt(1), rational.FromInt(2)}
	p := New(coeffs...)
	coeffs[0] = rational.FromInt(7)
	checkRat(t, p, 1, 2)
	// Output is copied, not shared.
	out := p.Coefficients()
	out[1] = rational.FromInt(9)
	checkRat(t, p, 1, 2)
}

func Test_Degree_01(t *testing.T) {
	require.Equal(t, uint(0), rat().Degree())
	require.Equal(t, uint(0), rat(5).Degree())
	require.Equal(t, uint(3), rat(0, 0, 0, 1).Degree())
	// Zero and non-zero constants share a degree, but not IsZero
	require.True(t, rat().IsZero())
	require.False(t, rat(5).IsZero())
	require.True(t, rat(5).IsConstant())
}

func Test_Monomial_01(t *testing.T) {
	checkRat(t, Monomial(rational.FromInt(5), 0), 5)
	checkRat(t, Monomial(rational.FromInt(2), 3), 0, 0, 0, 2)
	require.True(t, Monomial(rational.FromInt(0), 0).Equal(rat(0)))
	require.True(t, Monomial(rational.FromInt(0), 4).IsZero())
}

func Test_Monomial_02(t *testing.T) {
	_, err := MonomialInt(rational.FromInt(1), -1)
	require.ErrorIs(t, err, ErrNegativeExponent)
	//
	m, err := MonomialInt(rational.FromInt(4), 2)
	require.NoError(t, err)
	checkRat(t, m, 0, 0, 4)
}

func Test_LeadingTerm_01(t *testing.T) {
	p := rat(-3, 2, -4, 7)
	//
	require.Equal(t, "7", p.LeadingCoefficient().String())
	checkRat(t, p.LeadingTerm(), 0, 0, 0, 7)
	checkRat(t, rat().LeadingTerm(), 0)
	checkRat(t, X[rational.Element]().LeadingTerm(), 0, 1)
}

func Test_DivMono_01(t *testing.T) {
	var (
		xSquared    = Monomial(rational.FromInt(1), 2)
		x           = Monomial(rational.FromInt(1), 1)
		threeXCubed = Monomial(rational.FromInt(3), 3)
	)
	//
	checkDivMono(t, xSquared, x, x)
	checkDivMono(t, threeXCubed, xSquared, Monomial(rational.FromInt(3), 1))
	// 3x³ ÷ 2x = (3/2)x²
	checkDivMono(t, threeXCubed, rat(0, 2), ratq([2]int64{0, 1}, [2]int64{0, 1}, [2]int64{3, 2}))
	// Only leading terms are considered
	checkDivMono(t, rat(5, 0, 4), rat(7, 2), rat(0, 2))
}

func Test_DivMono_02(t *testing.T) {
	x := Monomial(rational.FromInt(1), 1)
	//
	_, err := x.DivMono(rat())
	require.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = x.DivMono(Monomial(rational.FromInt(1), 2))
	require.ErrorIs(t, err, ErrDegree)
}

func Test_Div_01(t *testing.T) {
	var (
		xSquared    = Monomial(rational.FromInt(1), 2)
		x           = Monomial(rational.FromInt(1), 1)
		threeXCubed = Monomial(rational.FromInt(3), 3)
	)
	// x² ÷ x = (x, 0)
	checkDiv(t, xSquared, x, x, rat())
	// 3x³ ÷ x² = (3x, 0)
	checkDiv(t, threeXCubed, xSquared, Monomial(rational.FromInt(3), 1), rat())
}

func Test_Div_02(t *testing.T) {
	// (x³ − 4x² + 2x − 3) ÷ (x + 2) = (x² − 6x + 14, −31)
	checkDiv(t, rat(-3, 2, -4, 1), rat(2, 1), rat(14, -6, 1), rat(-31))
}

func Test_Div_03(t *testing.T) {
	// Dividend of lower degree than divisor
	checkDiv(t, rat(1, 2), rat(1, 2, 3), rat(), rat(1, 2))
	// Zero dividend
	checkDiv(t, rat(), rat(1, 2, 3), rat(), rat())
	// Divide by self
	checkDiv(t, rat(1, 2, 3), rat(1, 2, 3), rat(1), rat())
	// Divide by constant
	checkDiv(t, rat(1, 2, 3), rat(2), ratq([2]int64{1, 2}, [2]int64{1, 1}, [2]int64{3, 2}), rat())
}

func Test_Div_04(t *testing.T) {
	// Remainder of same degree as divisor must still be divided.
	checkDiv(t, rat(3, 1), rat(1, 1), rat(1), rat(2))
	checkDiv(t, rat(1, 0, 2), rat(0, 1, 1), rat(2), rat(1, -2))
}

func Test_Div_05(t *testing.T) {
	// Non-monic divisor gives fractional quotient: (x² + 1) ÷ (2x) = (x/2, 1)
	checkDiv(t, rat(1, 0, 1), rat(0, 2), ratq([2]int64{0, 1}, [2]int64{1, 2}), rat(1))
}

func Test_Div_06(t *testing.T) {
	_, _, err := Div(rat(1, 2, 3), rat())
	require.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, _, err = Div(rat(1, 2, 3), Poly[rational.Element]{})
	require.True(t, errors.Is(err, ErrDivisionByZero))
	//
	_, err = rat(1).Quo(rat(0, 0))
	require.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = rat(1).Rem(rat(0, 0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func Test_Div_07(t *testing.T) {
	q, err := rat(-3, 2, -4, 1).Quo(rat(2, 1))
	require.NoError(t, err)
	checkRat(t, q, 14, -6, 1)
	//
	r, err := rat(-3, 2, -4, 1).Rem(rat(2, 1))
	require.NoError(t, err)
	checkRat(t, r, -31)
}

func Test_Div_GF251_01(t *testing.T) {
	// Same as Test_Div_02, but over GF(251)
	checkGF251Div(t, gf(-3, 2, -4, 1), gf(2, 1), []int64{14, -6, 1}, []int64{-31})
	// x^250 - 1 vanishes on all non-zero elements, hence x - 2 divides it.
	checkGF251Div(t, New(append([]gf251.Element{gf251.New(250)}, append(make([]gf251.Element, 249), gf251.New(1))...)...),
		gf(-2, 1), nil, []int64{0})
}

func Test_Div_GF251_02(t *testing.T) {
	// Divide a spread of monic quadratics by every monic linear polynomial.
	for a := 0; a < gf251.N; a += 10 {
		for b := 0; b < gf251.N; b += 10 {
			f := New(gf251.New(uint8(a)), gf251.New(uint8(b)), gf251.New(1))
			//
			for c := range uint8(gf251.N) {
				g := New(gf251.New(c), gf251.New(1))
				q, r, err := Div(f, g)
				//
				require.NoError(t, err)
				require.True(t, r.IsConstant())
				require.True(t, q.Mul(g).Add(r).Equal(f), "%s / %s", f, g)
			}
		}
	}
}

func Test_ZeroValue_01(t *testing.T) {
	var p Poly[rational.Element]
	//
	require.True(t, p.IsZero())
	require.Equal(t, uint(0), p.Degree())
	require.Equal(t, "0", p.String())
	require.True(t, p.Equal(rat()))
	require.True(t, rat().Equal(p))
	checkRat(t, p.Add(rat(1, 2)), 1, 2)
	checkRat(t, p.Mul(rat(1, 2)), 0)
	checkRat(t, p.Neg(), 0)
	checkDiv(t, p, rat(1, 2), rat(), rat())
	require.Len(t, p.Coefficients(), 1)
}

func Test_Equal_01(t *testing.T) {
	require.True(t, rat(1, 2, 0).Equal(rat(1, 2)))
	require.False(t, rat(1, 2).Equal(rat(1, 2, 3)))
	require.False(t, rat(1, 2).Equal(rat(1, 3)))
	require.False(t, rat(0).Equal(rat(1)))
}

func Test_String_01(t *testing.T) {
	require.Equal(t, "0", rat().String())
	require.Equal(t, "-31", rat(-31).String())
	require.Equal(t, "x^3 - 4*x^2 + 2*x - 3", rat(-3, 2, -4, 1).String())
	require.Equal(t, "-x^2 + x", rat(0, 1, -1).String())
	require.Equal(t, "3/2*x + 1/2", ratq([2]int64{1, 2}, [2]int64{3, 2}).String())
	require.Equal(t, "250*x + 1", gf(1, -1).String())
}

func Test_Immutable_01(t *testing.T) {
	var (
		f = rat(-3, 2, -4, 1)
		g = rat(2, 1)
	)
	// Exercise every operation
	_ = f.Add(g)
	_ = f.Sub(g)
	_ = f.Neg()
	_ = f.Mul(g)
	_ = f.MulScalar(rational.FromInt(3))
	_ = f.LeadingTerm()
	_, _, _ = Div(f, g)
	// Check nothing changed
	checkRat(t, f, -3, 2, -4, 1)
	checkRat(t, g, 2, 1)
}

func Test_Concurrent_01(t *testing.T) {
	var (
		f  = rat(-3, 2, -4, 1)
		g  = rat(2, 1)
		wg sync.WaitGroup
	)
	//
	for range 16 {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			for range 100 {
				q, r, err := Div(f, g)
				if err != nil || !q.Equal(rat(14, -6, 1)) || !r.Equal(rat(-31)) {
					t.Errorf("unexpected division result (%s, %s, %v)", q, r, err)
					return
				}
			}
		}()
	}
	//
	wg.Wait()
}

// =========================================================================================

func rat(coeffs ...int64) Poly[rational.Element] {
	return New(elements[rational.Element](coeffs)...)
}

func ratq(coeffs ...[2]int64) Poly[rational.Element] {
	var elems = make([]rational.Element, len(coeffs))
	//
	for i, c := range coeffs {
		elems[i] = rational.New(c[0], c[1])
	}
	//
	return New(elems...)
}

func gf(coeffs ...int64) Poly[gf251.Element] {
	return New(elements[gf251.Element](coeffs)...)
}

func elements[F field.Element[F]](coeffs []int64) []F {
	var elems = make([]F, len(coeffs))
	//
	for i, c := range coeffs {
		elems[i] = field.Int64[F](c)
	}
	//
	return elems
}

func checkRat(t *testing.T, actual Poly[rational.Element], expected ...int64) {
	t.Helper()
	//
	if !actual.Equal(rat(expected...)) {
		t.Errorf("expected %s, got %s", rat(expected...), actual)
	}
	// Check canonical form
	checkCanonical(t, actual)
}

func checkCanonical[F field.Element[F]](t *testing.T, p Poly[F]) {
	t.Helper()
	//
	coeffs := p.Coefficients()
	//
	if len(coeffs) == 0 {
		t.Errorf("polynomial %s has no coefficients", p)
	} else if len(coeffs) > 1 && coeffs[len(coeffs)-1].IsZero() {
		t.Errorf("polynomial %s has trailing zero", p)
	}
}

func checkDivMono[F field.Element[F]](t *testing.T, f, g, expected Poly[F]) {
	t.Helper()
	//
	actual, err := f.DivMono(g)
	//
	if err != nil {
		t.Error(err)
	} else if !actual.Equal(expected) {
		t.Errorf("%s / %s: expected %s, got %s", f, g, expected, actual)
	}
}

func checkDiv[F field.Element[F]](t *testing.T, f, g, quot, rem Poly[F]) {
	t.Helper()
	//
	q, r, err := Div(f, g)
	//
	if err != nil {
		t.Fatal(err)
	}
	// Check quotients
	if !q.Equal(quot) {
		t.Errorf("%s / %s: quotients differ: %s vs %s", f, g, quot, q)
	}
	// Check remainders
	if !r.Equal(rem) {
		t.Errorf("%s / %s: remainders differ: %s vs %s", f, g, rem, r)
	}
	//
	checkCanonical(t, q)
	checkCanonical(t, r)
}

func checkGF251Div(t *testing.T, f, g Poly[gf251.Element], quot, rem []int64) {
	t.Helper()
	//
	q, r, err := Div(f, g)
	require.NoError(t, err)
	//
	if quot != nil {
		if diff := cmp.Diff(gf(quot...).Coefficients(), q.Coefficients()); diff != "" {
			t.Errorf("%s / %s: quotient mismatch (-want +got):\n%s", f, g, diff)
		}
	} else if !q.Mul(g).Add(r).Equal(f) {
		t.Errorf("%s / %s: division identity fails", f, g)
	}
	//
	if diff := cmp.Diff(gf(rem...).Coefficients(), r.Coefficients()); diff != "" {
		t.Errorf("%s / %s: remainder mismatch (-want +got):\n%s", f, g, diff)
	}
}
