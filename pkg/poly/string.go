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
	"fmt"
	"strings"
)

// String renders this polynomial with the highest degree term first, such as
// "3*x^2 - x + 5".  Coefficients are rendered using their own String method,
// and a leading "-" is treated as a sign.
func (p Poly[F]) String() string {
	var buf strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := int(p.Degree()); i >= 0; i-- {
		c := p.Coefficient(uint(i))
		//
		if c.IsZero() {
			continue
		}
		//
		coeff, negative := strings.CutPrefix(c.String(), "-")
		// Various cases to improve readability
		switch {
		case buf.Len() == 0 && negative:
			buf.WriteString("-")
		case negative:
			buf.WriteString(" - ")
		case buf.Len() != 0:
			buf.WriteString(" + ")
		}
		//
		buf.WriteString(term(coeff, uint(i)))
	}
	//
	return buf.String()
}

// Render a single term from the (unsigned) string representation of its
// coefficient.
func term(coeff string, power uint) string {
	var variable string
	//
	switch power {
	case 0:
		return coeff
	case 1:
		variable = "x"
	default:
		variable = fmt.Sprintf("x^%d", power)
	}
	//
	if coeff == "1" {
		return variable
	}
	//
	return fmt.Sprintf("%s*%s", coeff, variable)
}
