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
	"github.com/consensys/go-unipoly/pkg/field"
)

// Poly is a dense univariate polynomial over a field F, such as
// c₀ + c₁x + c₂x² + ... + cₙxⁿ.  Coefficients are stored low degree first and
// are always held in canonical form: the final (i.e. leading) coefficient is
// non-zero, except for the zero polynomial which is held as a single zero
// coefficient.  Polynomials are immutable values, meaning no operation ever
// modifies either its receiver or its arguments.  Observe that an
// uninitialised Poly variable corresponds with zero.
type Poly[F field.Element[F]] struct {
	coeffs []F
}

// New constructs a polynomial from zero or more coefficients, given from the
// lowest degree upwards.  Trailing zeros (i.e. those of highest degree) are
// removed, whilst leading zeros are retained.  For example, [0,2,3] gives
// 2x+3x².  The given slice is copied and can be safely reused by the caller.
func New[F field.Element[F]](coeffs ...F) Poly[F] {
	n := len(coeffs)
	// Strip trailing zeros
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	//
	if n == 0 {
		return Zero[F]()
	}
	//
	ncoeffs := make([]F, n)
	copy(ncoeffs, coeffs[:n])
	//
	return Poly[F]{ncoeffs}
}

// Zero constructs the zero polynomial.
func Zero[F field.Element[F]]() Poly[F] {
	return Poly[F]{[]F{field.Zero[F]()}}
}

// One constructs the constant polynomial 1.
func One[F field.Element[F]]() Poly[F] {
	return Poly[F]{[]F{field.One[F]()}}
}

// Constant constructs the constant polynomial c, which is zero when c is zero.
func Constant[F field.Element[F]](c F) Poly[F] {
	return Poly[F]{[]F{c}}
}

// X constructs the polynomial x.
func X[F field.Element[F]]() Poly[F] {
	return Monomial(field.One[F](), 1)
}

// Monomial constructs the polynomial c·xᵈ.  When c is zero, this gives the zero
// polynomial.
func Monomial[F field.Element[F]](c F, d uint) Poly[F] {
	if c.IsZero() {
		return Zero[F]()
	}
	//
	coeffs := make([]F, d+1)
	coeffs[d] = c
	//
	return Poly[F]{coeffs}
}

// MonomialInt constructs the polynomial c·xᵈ from a signed exponent, returning
// ErrNegativeExponent if d < 0.
func MonomialInt[F field.Element[F]](c F, d int) (Poly[F], error) {
	if d < 0 {
		return Zero[F](), ErrNegativeExponent
	}
	//
	return Monomial(c, uint(d)), nil
}

// Degree returns the highest power of x with a non-zero coefficient.  By
// convention, the zero polynomial has degree 0, hence IsZero should be used to
// distinguish it from non-zero constants.
func (p Poly[F]) Degree() uint {
	return p.Len() - 1
}

// Len returns the number of coefficients held in this polynomial, which is
// always at least one.
func (p Poly[F]) Len() uint {
	if len(p.coeffs) == 0 {
		return 1
	}
	//
	return uint(len(p.coeffs))
}

// IsZero checks whether this is the zero polynomial.
func (p Poly[F]) IsZero() bool {
	return len(p.coeffs) == 0 || (len(p.coeffs) == 1 && p.coeffs[0].IsZero())
}

// IsConstant checks whether this polynomial has degree zero, which includes the
// zero polynomial.
func (p Poly[F]) IsConstant() bool {
	return p.Len() == 1
}

// Coefficient returns the coefficient of xⁱ, which is zero for any i beyond the
// degree of this polynomial.
func (p Poly[F]) Coefficient(i uint) F {
	if i >= uint(len(p.coeffs)) {
		return field.Zero[F]()
	}
	//
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficients of this polynomial, lowest
// degree first.
func (p Poly[F]) Coefficients() []F {
	if len(p.coeffs) == 0 {
		return []F{field.Zero[F]()}
	}
	//
	coeffs := make([]F, len(p.coeffs))
	copy(coeffs, p.coeffs)
	//
	return coeffs
}

// LeadingCoefficient returns the coefficient of the highest power of x, which
// is zero only for the zero polynomial.
func (p Poly[F]) LeadingCoefficient() F {
	if p.coeffs == nil {
		return field.Zero[F]()
	} else if len(p.coeffs) == 0 {
		// Only constructors produce coefficient arrays, and none are empty.
		panic("polynomial has no coefficients")
	}
	//
	return p.coeffs[len(p.coeffs)-1]
}

// LeadingTerm returns the monomial c·xᵈ, where c is the leading coefficient and d
// the degree of this polynomial.
func (p Poly[F]) LeadingTerm() Poly[F] {
	return Monomial(p.LeadingCoefficient(), p.Degree())
}

// Equal determines whether two polynomials have identical coefficients.
func (p Poly[F]) Equal(other Poly[F]) bool {
	if p.Len() != other.Len() {
		return false
	}
	//
	for i := range p.Len() {
		if !p.Coefficient(i).Equals(other.Coefficient(i)) {
			return false
		}
	}
	//
	return true
}
