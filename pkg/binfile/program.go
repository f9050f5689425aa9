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

// Package binfile reads compiled programs from their JSON form, producing
// the program data words plus the symbolic reference table which hint
// execution resolves variable names against.
package binfile

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/feltvm/go-feltvm/pkg/hints"
	"github.com/feltvm/go-feltvm/pkg/util/felt"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
)

// Program is a loaded program: its data words, the reference table shared by
// all hints, and the hints themselves keyed by the program counter offset at
// which each fires.  A program is immutable once loaded.
type Program struct {
	// Data words, in program order.
	Data []felt.Element
	// References, in reference-manager order.  Hints address into this table
	// via their reference ids.
	References []hints.HintReference
	// Hints keyed by program counter offset.
	Hints map[uint64][]Hint
}

// Hint is a single hint call site: its code, the tracking context at that
// point, and the mapping from (fully qualified) variable names to reference
// table indices.
type Hint struct {
	Code         string
	ApTracking   hints.ApTracking
	ReferenceIDs map[string]int
}

// Raw JSON shape of a compiled program, insofar as this package consumes it.
type jsonProgram struct {
	Prime            string                `json:"prime"`
	Data             []string              `json:"data"`
	ReferenceManager jsonReferenceManager  `json:"reference_manager"`
	Hints            map[string][]jsonHint `json:"hints"`
}

type jsonReferenceManager struct {
	References []jsonReference `json:"references"`
}

type jsonReference struct {
	ApTrackingData hints.ApTracking `json:"ap_tracking_data"`
	Pc             uint64           `json:"pc"`
	Value          string           `json:"value"`
}

type jsonHint struct {
	Code             string               `json:"code"`
	FlowTrackingData jsonFlowTrackingData `json:"flow_tracking_data"`
}

type jsonFlowTrackingData struct {
	ApTracking   hints.ApTracking `json:"ap_tracking"`
	ReferenceIDs map[string]int   `json:"reference_ids"`
}

// ProgramFromJSON parses a compiled program from its JSON form.  The
// program's prime must match the machine's field, and every reference value
// must parse; otherwise loading fails as a whole.
func ProgramFromJSON(bytes []byte) (*Program, error) {
	var raw jsonProgram
	//
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("malformed program: %w", err)
	}
	//
	if err := checkPrime(raw.Prime); err != nil {
		return nil, err
	}
	//
	program := &Program{
		Data:  make([]felt.Element, len(raw.Data)),
		Hints: make(map[uint64][]Hint, len(raw.Hints)),
	}
	//
	for i, word := range raw.Data {
		element, err := felt.FromString(word)
		//
		if err != nil {
			return nil, fmt.Errorf("invalid data word %d: %w", i, err)
		}
		//
		program.Data[i] = element
	}
	//
	for i, ref := range raw.ReferenceManager.References {
		parsed, err := ParseReferenceValue(ref.Value)
		//
		if err != nil {
			return nil, fmt.Errorf("invalid reference %d: %w", i, err)
		}
		//
		parsed.ApTracking = ref.ApTrackingData
		program.References = append(program.References, parsed)
	}
	//
	for key, rawHints := range raw.Hints {
		pc, err := strconv.ParseUint(key, 10, 64)
		//
		if err != nil {
			return nil, fmt.Errorf("invalid hint pc %q", key)
		}
		//
		for _, h := range rawHints {
			program.Hints[pc] = append(program.Hints[pc], Hint{
				Code:         h.Code,
				ApTracking:   h.FlowTrackingData.ApTracking,
				ReferenceIDs: h.FlowTrackingData.ReferenceIDs,
			})
		}
	}
	//
	log.Debugf("loaded program: %d words, %d references, %d hint sites",
		len(program.Data), len(program.References), len(program.Hints))
	//
	return program, nil
}

// IdsData builds the name -> reference table for a given hint, keying each
// reference by the unqualified (final) component of its variable name.
func (p *Program) IdsData(hint Hint) (hints.IdsData, error) {
	ids := make(hints.IdsData, len(hint.ReferenceIDs))
	//
	for name, index := range hint.ReferenceIDs {
		if index < 0 || index >= len(p.References) {
			return nil, fmt.Errorf("invalid reference id %d for %q", index, name)
		}
		//
		parts := strings.Split(name, ".")
		ids[parts[len(parts)-1]] = p.References[index]
	}
	//
	return ids, nil
}

// DataValues returns the program's data words as cell values, ready to be
// loaded into a memory segment.
func (p *Program) DataValues() []memory.MaybeRelocatable {
	values := make([]memory.MaybeRelocatable, len(p.Data))
	//
	for i, word := range p.Data {
		values[i] = memory.NewFeltValue(word)
	}
	//
	return values
}

// checkPrime ensures a program was compiled for the machine's own field.
func checkPrime(prime string) error {
	var value big.Int
	//
	if _, ok := value.SetString(prime, 0); !ok {
		return fmt.Errorf("invalid prime %q", prime)
	}
	//
	if value.Cmp(felt.Modulus()) != 0 {
		return fmt.Errorf("unsupported prime %s (expected %s)", &value, felt.Modulus())
	}
	//
	return nil
}
