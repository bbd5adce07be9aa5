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
package bls12_377

import (
	"hash/fnv"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element, the scalar field of the BLS12-377 curve, to conform to
// the field.Element interface.  Elements are passed by value and every
// operation returns a fresh element.
type Element struct {
	fr.Element
}

// New constructs an element from a given natural number.
func New(val uint64) Element {
	return Element{fr.NewElement(val)}
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fr.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals implementation for the field.Element interface
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// Hash implementation which allows elements to be placed in hash sets.
func (x Element) Hash() uint64 {
	hash := fnv.New64a()
	bytes := x.Element.Bytes()
	hash.Write(bytes[:])
	//
	return hash.Sum64()
}

// IsOne checks whether x = 1.
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero checks whether x = 0.
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// SetBytes interprets bytes as a big endian natural number, reduced modulo the
// field order.
func (x Element) SetBytes(bytes []byte) Element {
	x.Element.SetBytes(bytes)
	//
	return x
}

// SetUint64 returns the element val.
func (x Element) SetUint64(val uint64) Element {
	x.Element.SetUint64(val)
	//
	return x
}

func (x Element) String() string {
	return x.Element.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
