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
	"io"

	"github.com/consensys/go-unipoly/pkg/field"
	"github.com/consensys/go-unipoly/pkg/field/bls12_377"
	"github.com/consensys/go-unipoly/pkg/field/bn254"
	"github.com/consensys/go-unipoly/pkg/field/gf251"
	"github.com/consensys/go-unipoly/pkg/field/gf8209"
	"github.com/consensys/go-unipoly/pkg/field/koalabear"
	"github.com/consensys/go-unipoly/pkg/field/mersenne31"
	"github.com/consensys/go-unipoly/pkg/field/rational"
	"github.com/consensys/go-unipoly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Operation identifies one of the binary polynomial operations.
type Operation uint8

const (
	// ADD computes a + b
	ADD Operation = iota
	// SUB computes a - b
	SUB
	// MUL computes a * b
	MUL
	// DIV computes the quotient and remainder of a / b
	DIV
)

func (op Operation) String() string {
	switch op {
	case ADD:
		return "add"
	case SUB:
		return "sub"
	case MUL:
		return "mul"
	case DIV:
		return "div"
	default:
		panic("unknown operation")
	}
}

var addCmd = newArithCommand(ADD, "Add two polynomials.")
var subCmd = newArithCommand(SUB, "Subtract one polynomial from another.")
var mulCmd = newArithCommand(MUL, "Multiply two polynomials.")
var divCmd = newArithCommand(DIV, "Divide one polynomial by another, giving quotient and remainder.")

func newArithCommand(op Operation, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] a b", op),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := GetString(cmd, "field")
			//
			if err := runArith(cmd, name, op, args[0], args[1]); err != nil {
				return fmt.Errorf("%s failed: %w", op, err)
			}
			//
			return nil
		},
	}
}

// Dispatch on the field name to an appropriately instantiated computation.
func runArith(cmd *cobra.Command, name string, op Operation, lhs string, rhs string) error {
	var (
		out    = cmd.OutOrStdout()
		coeffs = GetFlag(cmd, "coeffs")
	)
	//
	switch name {
	case field.GF_251.Name:
		return arith[gf251.Element](out, op, lhs, rhs, coeffs)
	case field.GF_8209.Name:
		return arith[gf8209.Element](out, op, lhs, rhs, coeffs)
	case field.KOALABEAR.Name:
		return arith[koalabear.Element](out, op, lhs, rhs, coeffs)
	case field.MERSENNE31.Name:
		return arith[mersenne31.Element](out, op, lhs, rhs, coeffs)
	case field.BLS12_377.Name:
		return arith[bls12_377.Element](out, op, lhs, rhs, coeffs)
	case field.BN254.Name:
		return arith[bn254.Element](out, op, lhs, rhs, coeffs)
	case field.RATIONAL.Name:
		return arith[rational.Element](out, op, lhs, rhs, coeffs)
	default:
		return fmt.Errorf("unknown field \"%s\"", name)
	}
}

func arith[F field.Element[F]](out io.Writer, op Operation, lhs string, rhs string, coeffs bool) error {
	a, err := ParsePoly[F](lhs)
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	//
	b, err := ParsePoly[F](rhs)
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	//
	log.Debugf("a = %s", a)
	log.Debugf("b = %s", b)
	//
	stats := NewPerfStats()
	defer stats.Log(op.String())
	//
	switch op {
	case ADD:
		printPoly(out, "", a.Add(b), coeffs)
	case SUB:
		printPoly(out, "", a.Sub(b), coeffs)
	case MUL:
		printPoly(out, "", a.Mul(b), coeffs)
	case DIV:
		q, r, err := poly.Div(a, b)
		if err != nil {
			return err
		}
		//
		printPoly(out, "quotient: ", q, coeffs)
		printPoly(out, "remainder: ", r, coeffs)
	}
	//
	return nil
}

func printPoly[F field.Element[F]](out io.Writer, prefix string, p poly.Poly[F], coeffs bool) {
	if coeffs {
		fmt.Fprintf(out, "%s%s\n", prefix, FormatCoefficients(p))
	} else {
		fmt.Fprintf(out, "%s%s\n", prefix, p)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
}
