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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a field.  The zero value of any implementation must represent
// the additive identity of its field, which means Zero can be obtained without
// any knowledge of the concrete type.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Equals returns true if x = y.
	Equals(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// SetUint64 returns the element corresponding to the natural number val,
	// reduced into the field where necessary.
	SetUint64(val uint64) Operand
	// SetBytes returns the element corresponding to the natural number whose
	// big endian encoding is given, reduced into the field where necessary.
	SetBytes(bytes []byte) Operand
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Int64 construct a field element from a given int64.  Negative values map onto
// their additive inverse.
func Int64[F Element[F]](val int64) F {
	var element F
	//
	if val < 0 {
		// Careful with math.MinInt64, whose negation overflows.
		mag := uint64(-(val + 1)) + 1
		return Neg(element.SetUint64(mag))
	}
	//
	return element.SetUint64(uint64(val))
}

// BigInt construct a field element from a given big.Int.  Negative values map
// onto their additive inverse.
func BigInt[F Element[F]](val *big.Int) F {
	var (
		element F
		mag     big.Int
	)
	//
	mag.Abs(val)
	element = element.SetBytes(mag.Bytes())
	//
	if val.Sign() < 0 {
		return Neg(element)
	}
	//
	return element
}

// Neg computes the additive inverse -x.
func Neg[F Element[F]](x F) F {
	var zero F
	//
	return zero.Sub(x)
}

// Div computes x / y, which is defined as x * y⁻¹.  Division by zero yields
// zero, since the inverse of zero is zero.
func Div[F Element[F]](x F, y F) F {
	return x.Mul(y.Inverse())
}
