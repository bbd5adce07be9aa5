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
package main

import (
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-unipoly")

	specs := []fieldSpecs{
		{Name: "gf8209", Title: "GF8209", Modulus: 8209},
		{Name: "koalabear", Title: "KoalaBear", Modulus: 1<<31 - 1<<24 + 1},
		{Name: "mersenne31", Title: "Mersenne31", Modulus: 1<<31 - 1},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Name),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	// Package name
	Name string
	// Name used in documentation
	Title   string
	Modulus uint32
}

type fieldConfig struct {
	fieldSpecs
	RSq               uint32
	NegModulusInvModR uint32
	RModModulus       uint32
}

func (f fieldSpecs) config() (*fieldConfig, error) {
	const R = 1 << 32

	specs := fieldConfig{
		fieldSpecs: f,
	}

	if f.Modulus >= R>>1 { // need an extra bit
		return nil, fmt.Errorf("modulus must be less than 2³¹")
	} else if f.Modulus%2 == 0 {
		return nil, fmt.Errorf("modulus must be odd")
	}

	m := big.NewInt(int64(f.Modulus))
	r := big.NewInt(R)

	var x big.Int

	x.Mod(r, m)
	specs.RModModulus = uint32(x.Uint64())

	x.Mul(&x, &x).
		Mod(&x, m)

	specs.RSq = uint32(x.Uint64())

	x.ModInverse(m, r)
	specs.NegModulusInvModR = uint32(R - x.Uint64())

	return &specs, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
