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
package rational

import (
	"math/big"
)

// Element represents a rational number.  The zero value is 0.  Elements are
// immutable: every operation allocates a fresh big.Rat, and the value held
// inside an element is never modified once constructed.
type Element struct {
	val *big.Rat
}

// New constructs the rational number num/den.  This panics if den is zero.
func New(num int64, den int64) Element {
	return Element{big.NewRat(num, den)}
}

// FromInt constructs the integer val.
func FromInt(val int64) Element {
	return New(val, 1)
}

// FromRat constructs an element holding a copy of the given big.Rat.
func FromRat(val *big.Rat) Element {
	return Element{new(big.Rat).Set(val)}
}

// Rat returns a copy of the underlying rational number.
func (x Element) Rat() *big.Rat {
	return new(big.Rat).Set(x.get())
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{new(big.Rat).Add(x.get(), y.get())}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{new(big.Rat).Sub(x.get(), y.get())}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{new(big.Rat).Mul(x.get(), y.get())}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	if x.IsZero() {
		return Element{}
	}
	//
	return Element{new(big.Rat).Inv(x.get())}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.get().Cmp(y.get())
}

// Equals implementation for the field.Element interface
func (x Element) Equals(y Element) bool {
	return x.Cmp(y) == 0
}

// IsZero checks whether x = 0.
func (x Element) IsZero() bool {
	return x.val == nil || x.val.Sign() == 0
}

// IsOne checks whether x = 1.
func (x Element) IsOne() bool {
	return x.val != nil && x.val.IsInt() && x.val.Num().IsInt64() && x.val.Num().Int64() == 1
}

// SetUint64 returns the integer val.
func (x Element) SetUint64(val uint64) Element {
	var num big.Int
	//
	return Element{new(big.Rat).SetInt(num.SetUint64(val))}
}

// SetBytes returns the integer whose big endian encoding is given.
func (x Element) SetBytes(bytes []byte) Element {
	var num big.Int
	//
	return Element{new(big.Rat).SetInt(num.SetBytes(bytes))}
}

// String returns either "a" for integers, or "a/b" otherwise.
func (x Element) String() string {
	return x.get().RatString()
}

func (x Element) get() *big.Rat {
	if x.val == nil {
		return new(big.Rat)
	}
	//
	return x.val
}
