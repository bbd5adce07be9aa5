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
package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-unipoly/pkg/field"
	"github.com/consensys/go-unipoly/pkg/poly"
)

// ParsePoly parses a comma-separated list of coefficients, lowest degree first,
// into a polynomial over F.  Each coefficient is either an integer (e.g. "-3")
// or a fraction (e.g. "1/2").  An empty list gives the zero polynomial.
func ParsePoly[F field.Element[F]](text string) (poly.Poly[F], error) {
	coeffs, err := ParseCoefficients[F](text)
	//
	if err != nil {
		return poly.Zero[F](), err
	}
	//
	return poly.New(coeffs...), nil
}

// ParseCoefficients parses a comma-separated list of coefficients.
func ParseCoefficients[F field.Element[F]](text string) ([]F, error) {
	var coeffs []F
	//
	if strings.TrimSpace(text) == "" {
		return coeffs, nil
	}
	//
	for i, item := range strings.Split(text, ",") {
		c, err := parseCoefficient[F](strings.TrimSpace(item))
		//
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		//
		coeffs = append(coeffs, c)
	}
	//
	return coeffs, nil
}

func parseCoefficient[F field.Element[F]](text string) (F, error) {
	num, den, isFraction := strings.Cut(text, "/")
	//
	n, err := parseInt(num)
	if err != nil {
		return field.Zero[F](), err
	} else if !isFraction {
		return field.BigInt[F](n), nil
	}
	//
	d, err := parseInt(den)
	if err != nil {
		return field.Zero[F](), err
	}
	//
	denominator := field.BigInt[F](d)
	//
	if denominator.IsZero() {
		return field.Zero[F](), fmt.Errorf("denominator of \"%s\" is zero", text)
	}
	//
	return field.Div(field.BigInt[F](n), denominator), nil
}

func parseInt(text string) (*big.Int, error) {
	var val big.Int
	//
	if _, ok := val.SetString(strings.TrimSpace(text), 10); !ok {
		return &val, fmt.Errorf("invalid integer \"%s\"", text)
	}
	//
	return &val, nil
}

// FormatCoefficients renders the coefficients of a polynomial as a
// comma-separated list, lowest degree first.  This is the inverse of ParsePoly.
func FormatCoefficients[F field.Element[F]](p poly.Poly[F]) string {
	var items []string
	//
	for _, c := range p.Coefficients() {
		items = append(items, c.String())
	}
	//
	return strings.Join(items, ",")
}
