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
	"text/tabwriter"

	"github.com/consensys/go-unipoly/pkg/field"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the supported coefficient fields.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		//
		fmt.Fprintln(w, "NAME\tCHARACTERISTIC\tDESCRIPTION")
		//
		for _, cfg := range field.FIELD_CONFIGS {
			fmt.Fprintf(w, "%s\t%s\t%s\n", cfg.Name, cfg.Characteristic, cfg.Description)
		}
		//
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
