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

// Package hints resolves compile-time symbolic variable references into
// concrete machine addresses and typed values.  Hint implementations address
// every variable by name; the functions here look the name up in the
// reference table, resolve its reference against the current registers and
// read or write machine memory accordingly.  Read accessors never mutate the
// machine; every failure is a single structured error surfaced to the
// caller unmodified.
package hints

import (
	"github.com/feltvm/go-feltvm/pkg/util/felt"
	"github.com/feltvm/go-feltvm/pkg/vm"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// GetReferenceFromVarName returns the symbolic reference registered for a
// given variable name.
func GetReferenceFromVarName(name string, ids IdsData) (HintReference, error) {
	ref, ok := ids[name]
	//
	if !ok {
		return HintReference{}, &UnknownIdentifierError{Name: name}
	}
	//
	return ref, nil
}

// GetRelocatableFromVarName resolves a variable name to the address its
// reference denotes.
func GetRelocatableFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (memory.Relocatable, error) {
	ref, err := GetReferenceFromVarName(name, ids)
	//
	if err != nil {
		return memory.Relocatable{}, err
	}
	//
	addr, err := ComputeAddrFromReference(ref, machine, apTracking)
	//
	return addr, wrap(err)
}

// GetAddressFromVarName resolves a variable name to its address, represented
// generically as a cell value.  This is used when the address itself (rather
// than the cell contents) is the value of interest.
func GetAddressFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (memory.MaybeRelocatable, error) {
	addr, err := GetRelocatableFromVarName(name, machine, ids, apTracking)
	//
	if err != nil {
		return memory.MaybeRelocatable{}, err
	}
	//
	return memory.NewAddressValue(addr), nil
}

// GetPtrFromVarName resolves a variable name to the address it points at.
// For a dereferencing reference the addressed cell is read and must hold an
// address; otherwise the computed address already denotes the pointer target
// and is returned as-is.
func GetPtrFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (memory.Relocatable, error) {
	addr, err := GetRelocatableFromVarName(name, machine, ids, apTracking)
	//
	if err != nil {
		return memory.Relocatable{}, err
	}
	//
	ref, err := GetReferenceFromVarName(name, ids)
	//
	if err != nil {
		return memory.Relocatable{}, err
	}
	//
	if ref.Dereference {
		target, err := machine.GetRelocatable(addr)
		//
		return target, wrap(err)
	}
	//
	return addr, nil
}

// GetIntegerFromVarName resolves a variable name to the field element it
// holds.  A reference whose primary offset is an immediate yields that value
// directly; otherwise the resolved cell is read and must hold a field
// element.
func GetIntegerFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (felt.Element, error) {
	ref, err := GetReferenceFromVarName(name, ids)
	//
	if err != nil {
		return felt.Element{}, err
	}
	//
	if imm, ok := ref.Offset1.(Immediate); ok {
		return imm.Value, nil
	}
	//
	addr, err := ComputeAddrFromReference(ref, machine, apTracking)
	//
	if err != nil {
		return felt.Element{}, wrap(err)
	}
	//
	element, err := machine.GetFelt(addr)
	//
	return element, wrap(err)
}

// GetMaybeFromVarName resolves a variable name to whatever cell value it
// holds, without enforcing either variant.  Fails only if the resolved cell
// has never been written (or the address could not be computed at all).
func GetMaybeFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (memory.MaybeRelocatable, error) {
	ref, err := GetReferenceFromVarName(name, ids)
	//
	if err != nil {
		return memory.MaybeRelocatable{}, err
	}
	//
	if imm, ok := ref.Offset1.(Immediate); ok {
		return memory.NewFeltValue(imm.Value), nil
	}
	//
	addr, err := ComputeAddrFromReference(ref, machine, apTracking)
	//
	if err != nil {
		return memory.MaybeRelocatable{}, wrap(err)
	}
	//
	value := machine.Get(addr)
	//
	if value.IsEmpty() {
		return memory.MaybeRelocatable{}, wrap(&vm.UnknownValueError{Address: addr})
	}
	//
	return value.Unwrap(), nil
}

// InsertValueFromVarName writes a value into the cell a variable name
// resolves to, overwriting any prior contents.  This is how externally
// computed results are published back into machine-visible memory.
func InsertValueFromVarName(name string, value memory.MaybeRelocatable, machine *vm.VirtualMachine,
	ids IdsData, apTracking ApTracking) error {
	addr, err := GetRelocatableFromVarName(name, machine, ids, apTracking)
	//
	if err != nil {
		return err
	}
	//
	return wrap(machine.Insert(addr, value))
}

// InsertValueIntoAp writes a value into the cell currently addressed by the
// allocation pointer, i.e. the top of the execution stack.
func InsertValueIntoAp(machine *vm.VirtualMachine, value memory.MaybeRelocatable) error {
	return wrap(machine.Insert(machine.RunContext().Ap, value))
}
