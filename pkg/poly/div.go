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
	"fmt"

	"github.com/consensys/go-unipoly/pkg/field"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// ErrNegativeExponent is returned when constructing a monomial with a negative
// exponent.
var ErrNegativeExponent = errors.New("negative exponent")

// ErrDegree is returned when dividing one monomial by another of higher degree.
var ErrDegree = errors.New("divisor has higher degree than dividend")

// Div implements the division algorithm in F[x].  That is, it returns the
// unique quotient q and remainder r such that f = q*g + r, where either r is
// zero or deg(r) < deg(g).  Division by the zero polynomial is rejected with
// ErrDivisionByZero.
//
// Each iteration eliminates the leading term of the remainder, such that its
// degree strictly decreases.  Thus, the loop executes at most
// deg(f) - deg(g) + 1 times.  This relies on coefficient division being exact,
// as it is in any field.  Should a (non-field) coefficient type break this, the
// method panics rather than loop forever.
func Div[F field.Element[F]](f Poly[F], g Poly[F]) (Poly[F], Poly[F], error) {
	if g.IsZero() {
		return Zero[F](), Zero[F](), ErrDivisionByZero
	}
	//
	var (
		q   = Zero[F]()
		r   = New(f.Coefficients()...)
		ltg = g.LeadingTerm()
	)
	//
	for !r.IsZero() && r.Degree() >= g.Degree() {
		t, err := r.LeadingTerm().DivMono(ltg)
		// Sanity check
		if err != nil {
			panic(err.Error())
		}
		//
		deg := r.Degree()
		q = q.Add(t)
		r = r.Sub(t.Mul(g))
		// Sanity check progress
		if !r.IsZero() && r.Degree() >= deg {
			panic(fmt.Sprintf("remainder degree did not decrease (%d to %d)", deg, r.Degree()))
		}
	}
	//
	return q, r, nil
}

// Div returns the quotient and remainder of dividing p by g.  See Div for
// details.
func (p Poly[F]) Div(g Poly[F]) (Poly[F], Poly[F], error) {
	return Div(p, g)
}

// Quo returns the quotient of dividing p by g.
func (p Poly[F]) Quo(g Poly[F]) (Poly[F], error) {
	q, _, err := Div(p, g)
	//
	return q, err
}

// Rem returns the remainder of dividing p by g.
func (p Poly[F]) Rem(g Poly[F]) (Poly[F], error) {
	_, r, err := Div(p, g)
	//
	return r, err
}

// DivMono divides the leading term of p, say c₁·x^d₁, by the leading term of m,
// say c₂·x^d₂, giving (c₁/c₂)·x^(d₁-d₂).  Typically, both p and m are monomials
// though only their leading terms are considered.  This requires m is non-zero,
// and that d₁ >= d₂.
func (p Poly[F]) DivMono(m Poly[F]) (Poly[F], error) {
	if m.IsZero() {
		return Zero[F](), ErrDivisionByZero
	} else if p.Degree() < m.Degree() {
		return Zero[F](), fmt.Errorf("%w (%d < %d)", ErrDegree, p.Degree(), m.Degree())
	}
	//
	c := field.Div(p.LeadingCoefficient(), m.LeadingCoefficient())
	//
	return Monomial(c, p.Degree()-m.Degree()), nil
}
