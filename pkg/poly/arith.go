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

import "github.com/consensys/go-unipoly/pkg/field"

// Add returns p + q.  Coefficients are aligned on the constant term, and any
// coefficients beyond the length of the shorter operand are copied from the
// longer.  Leading terms can cancel, hence the result may have lower degree
// than either operand.
func (p Poly[F]) Add(q Poly[F]) Poly[F] {
	var (
		n      = max(p.Len(), q.Len())
		coeffs = make([]F, n)
	)
	//
	for i := range n {
		coeffs[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}
	//
	return normalise(coeffs)
}

// Neg returns -p.  Since no cancellation can arise, the degree is unchanged.
func (p Poly[F]) Neg() Poly[F] {
	var coeffs = make([]F, p.Len())
	//
	for i := range coeffs {
		coeffs[i] = field.Neg(p.Coefficient(uint(i)))
	}
	//
	return Poly[F]{coeffs}
}

// Sub returns p - q, which is defined as p + (-q).
func (p Poly[F]) Sub(q Poly[F]) Poly[F] {
	return p.Add(q.Neg())
}

// Mul returns p * q, computed by a dense convolution of the coefficients.  When
// neither operand is zero, the degree of the result is the sum of their
// degrees.
func (p Poly[F]) Mul(q Poly[F]) Poly[F] {
	if p.IsZero() || q.IsZero() {
		return Zero[F]()
	}
	//
	var coeffs = make([]F, p.Len()+q.Len()-1)
	//
	for i, ith := range p.coeffs {
		for j, jth := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(ith.Mul(jth))
		}
	}
	//
	return normalise(coeffs)
}

// MulScalar returns c * p.
func (p Poly[F]) MulScalar(c F) Poly[F] {
	if c.IsZero() {
		return Zero[F]()
	}
	//
	var coeffs = make([]F, p.Len())
	//
	for i := range coeffs {
		coeffs[i] = p.Coefficient(uint(i)).Mul(c)
	}
	//
	return normalise(coeffs)
}

// Trim trailing zeros from a freshly allocated coefficient array, taking
// ownership of it.
func normalise[F field.Element[F]](coeffs []F) Poly[F] {
	n := len(coeffs)
	//
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	//
	if n == 0 {
		return Zero[F]()
	}
	//
	return Poly[F]{coeffs[:n]}
}
