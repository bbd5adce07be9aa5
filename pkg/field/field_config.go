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

import "math/big"

// GF_251 is teany tiny prime field used mostly for testing.
var GF_251 = Config{"GF_251", "251", "tiny 8-bit prime field"}

// GF_8209 is small prime field used mostly for testing.
var GF_8209 = Config{"GF_8209", "8209", "small 14-bit prime field"}

// KOALABEAR corresponds to the KoalaBear field (2^31 - 2^24 + 1).
var KOALABEAR = Config{"KOALABEAR", "2130706433", "31-bit KoalaBear prime field"}

// MERSENNE31 corresponds to the Mersenne prime field (2^31 - 1).
var MERSENNE31 = Config{"MERSENNE31", "2147483647", "31-bit Mersenne prime field"}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377",
	"8444461749428370424248824938781546531375899335154063827935233455917409239041",
	"scalar field of BLS12-377"}

// BN254 is the scalar field of the BN254 curve.
var BN254 = Config{"BN254",
	"21888242871839275222246405745257275088548364400416034343698204186575808495617",
	"scalar field of BN254"}

// RATIONAL corresponds to the field of rational numbers, which has
// characteristic zero.
var RATIONAL = Config{"RATIONAL", "0", "rational numbers"}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	GF_251,
	GF_8209,
	KOALABEAR,
	MERSENNE31,
	BLS12_377,
	BN254,
	RATIONAL,
}

// Config provides a simple mechanism for selecting a coefficient field by
// name.
type Config struct {
	// Name suitable for identifying the config.  This is used on the command
	// line, and for improving error reporting, etc.
	Name string
	// Characteristic of the field written in decimal, where "0" indicates a
	// field of characteristic zero.
	Characteristic string
	// Short human-readable description of the field.
	Description string
}

// Modulus returns the characteristic of this field as a big integer.
func (c Config) Modulus() *big.Int {
	var val big.Int
	//
	if _, ok := val.SetString(c.Characteristic, 10); !ok {
		panic("invalid field characteristic " + c.Characteristic)
	}
	//
	return &val
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
