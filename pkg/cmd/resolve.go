// Copyright The FeltVM Authors
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
	"os"
	"sort"

	"github.com/feltvm/go-feltvm/pkg/binfile"
	"github.com/feltvm/go-feltvm/pkg/hints"
	"github.com/feltvm/go-feltvm/pkg/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [flags] program_file",
	Short: "resolve the symbolic variable references of every hint.",
	Long: `Load a compiled program and resolve each hint's variable
	references against a freshly initialised machine, printing the
	address each name resolves to (or why it does not resolve).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		program := readProgram(args[0])
		// Initialise machine with program + execution segments
		machine := vm.NewVirtualMachine()
		machine.AddSegment()
		base := machine.AddSegment()
		//
		context := machine.RunContext()
		context.Ap, context.Fp = base, base
		//
		for _, pc := range sortedPcs(program) {
			for _, h := range program.Hints[pc] {
				ids, err := program.IdsData(h)
				//
				if err != nil {
					log.Fatal(err)
				}
				//
				for _, name := range sortedNames(ids) {
					addr, err := hints.GetRelocatableFromVarName(name, machine, ids, h.ApTracking)
					//
					if err != nil {
						fmt.Printf("pc %d: %s: %s\n", pc, name, err)
					} else {
						fmt.Printf("pc %d: %s -> %s\n", pc, name, addr)
					}
				}
			}
		}
	},
}

func readProgram(filename string) *binfile.Program {
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		log.Fatal(err)
	}
	//
	program, err := binfile.ProgramFromJSON(bytes)
	//
	if err != nil {
		log.Fatal(err)
	}
	//
	return program
}

func sortedPcs(program *binfile.Program) []uint64 {
	pcs := make([]uint64, 0, len(program.Hints))
	//
	for pc := range program.Hints {
		pcs = append(pcs, pc)
	}
	//
	sort.Slice(pcs, func(i, j int) bool { return pcs[i] < pcs[j] })
	//
	return pcs
}

func sortedNames(ids hints.IdsData) []string {
	names := make([]string, 0, len(ids))
	//
	for name := range ids {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
