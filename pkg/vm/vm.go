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
package vm

import (
	"github.com/feltvm/go-feltvm/pkg/util"
	"github.com/feltvm/go-feltvm/pkg/util/felt"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// VirtualMachine bundles the register state with the segmented memory,
// providing the typed reads and writes everything above this layer (hint
// accessors in particular) is written against.  A machine is exclusively
// owned by a single executing run: no locking is performed here, and callers
// must not hold two mutable views of the same machine.
type VirtualMachine struct {
	context  RunContext
	segments *memory.SegmentManager
}

// NewVirtualMachine constructs a machine with no segments allocated and all
// registers at segment zero, offset zero.
func NewVirtualMachine() *VirtualMachine {
	return &VirtualMachine{segments: memory.NewSegmentManager()}
}

// RunContext returns the (mutable) register state of this machine.
func (p *VirtualMachine) RunContext() *RunContext {
	return &p.context
}

// Segments returns the segment manager of this machine.
func (p *VirtualMachine) Segments() *memory.SegmentManager {
	return p.segments
}

// Memory returns the memory of this machine.
func (p *VirtualMachine) Memory() *memory.Memory {
	return p.segments.Memory()
}

// AddSegment allocates a fresh memory segment, returning its base address.
func (p *VirtualMachine) AddSegment() memory.Relocatable {
	return p.segments.AddSegment()
}

// Get returns the value held at a given address, or an empty option if that
// cell has never been written.
func (p *VirtualMachine) Get(addr memory.Relocatable) util.Option[memory.MaybeRelocatable] {
	return p.segments.Memory().Get(addr)
}

// GetFelt reads the cell at a given address, requiring it to hold a field
// element.  Fails with UnknownValueError if the cell was never written, or
// ExpectedIntegerError if it holds an address.
func (p *VirtualMachine) GetFelt(addr memory.Relocatable) (felt.Element, error) {
	value := p.Get(addr)
	//
	if value.IsEmpty() {
		return felt.Element{}, &UnknownValueError{Address: addr}
	}
	//
	element, ok := value.Unwrap().Felt()
	//
	if !ok {
		return felt.Element{}, &ExpectedIntegerError{Value: value.Unwrap()}
	}
	//
	return element, nil
}

// GetRelocatable reads the cell at a given address, requiring it to hold an
// address.  Fails with UnknownValueError if the cell was never written, or
// ExpectedRelocatableError if it holds a field element.
func (p *VirtualMachine) GetRelocatable(addr memory.Relocatable) (memory.Relocatable, error) {
	value := p.Get(addr)
	//
	if value.IsEmpty() {
		return memory.Relocatable{}, &UnknownValueError{Address: addr}
	}
	//
	target, ok := value.Unwrap().Address()
	//
	if !ok {
		return memory.Relocatable{}, &ExpectedRelocatableError{Value: value.Unwrap()}
	}
	//
	return target, nil
}

// Insert writes a value into the cell at a given address, overwriting any
// prior contents.  Fails if the target segment has not been allocated.
func (p *VirtualMachine) Insert(addr memory.Relocatable, value memory.MaybeRelocatable) error {
	return p.segments.Memory().Insert(addr, value)
}
