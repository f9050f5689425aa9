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

	"github.com/feltvm/go-feltvm/pkg/vm"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] program_file",
	Short: "load a program's data words and dump machine memory.",
	Long: `Load a compiled program's data words into a fresh program
	segment and print every written cell, one per line.`,
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
		machine := vm.NewVirtualMachine()
		base := machine.AddSegment()
		//
		if _, err := machine.Segments().LoadData(base, program.DataValues()); err != nil {
			log.Fatal(err)
		}
		//
		width := termWidth()
		mem := machine.Memory()
		//
		for segment := uint(0); segment < mem.NumSegments(); segment++ {
			for offset := uint64(0); offset < mem.SegmentSize(segment); offset++ {
				addr := memory.NewRelocatable(segment, offset)
				value := mem.Get(addr)
				//
				if value.IsEmpty() {
					continue
				}
				//
				line := fmt.Sprintf("%s = %s", addr, value.Unwrap())
				// Truncate to the available width
				if width > 3 && uint(len(line)) > width {
					line = line[:width-3] + "..."
				}
				//
				fmt.Println(line)
			}
		}
	},
}

// termWidth determines how many columns are available for output, falling
// back to a fixed width when stdout is not a terminal.
func termWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return uint(w)
		}
	}
	//
	return 80
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
