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
package hints

import (
	"github.com/feltvm/go-feltvm/pkg/vm"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// ComputeAddrFromReference resolves a symbolic reference into the concrete
// address it denotes, given the machine's current register state and the
// tracking context of the current call site.  The primary offset is
// evaluated against the registers (correcting ap for drift); the secondary
// offset is then either evaluated the same way (its value must be a field
// element) or added as a literal.  The reference's own Dereference flag is
// not applied here: whether the resulting address is read is the accessor's
// concern.
func ComputeAddrFromReference(ref HintReference, machine *vm.VirtualMachine, apTracking ApTracking) (memory.Relocatable, error) {
	offset1, ok := ref.Offset1.(RegisterRef)
	//
	if !ok {
		return memory.Relocatable{}, &NoRegisterInReferenceError{}
	}
	//
	value, err := resolveRegisterRef(offset1, ref.ApTracking, machine, apTracking)
	//
	if err != nil {
		return memory.Relocatable{}, err
	}
	//
	addr, ok := value.Address()
	//
	if !ok {
		return memory.Relocatable{}, &vm.ExpectedRelocatableError{Value: value}
	}
	// Apply secondary offset
	switch offset2 := ref.Offset2.(type) {
	case nil:
		return addr, nil
	case Literal:
		return addr.AddInt(int64(offset2.Value))
	case RegisterRef:
		value, err := resolveRegisterRef(offset2, ref.ApTracking, machine, apTracking)
		//
		if err != nil {
			return memory.Relocatable{}, err
		}
		//
		element, ok := value.Felt()
		//
		if !ok {
			return memory.Relocatable{}, &vm.ExpectedIntegerError{Value: value}
		}
		//
		return addr.AddFelt(element)
	default:
		return memory.Relocatable{}, &InvalidOffsetError{Offset: ref.Offset2}
	}
}

// resolveRegisterRef evaluates a single register-relative offset expression:
// base register (ap drift-corrected, fp as-is) plus fixed offset, optionally
// reading the addressed cell when the expression dereferences.
func resolveRegisterRef(offset RegisterRef, refTracking ApTracking, machine *vm.VirtualMachine,
	apTracking ApTracking) (memory.MaybeRelocatable, error) {
	var (
		base memory.Relocatable
		err  error
	)
	//
	switch offset.Register {
	case FP:
		base = machine.RunContext().Fp
	case AP:
		base, err = ApplyApTrackingCorrection(machine.RunContext().Ap, refTracking, apTracking)
		//
		if err != nil {
			return memory.MaybeRelocatable{}, err
		}
	}
	//
	addr, err := base.AddInt(int64(offset.Offset))
	//
	if err != nil {
		return memory.MaybeRelocatable{}, err
	}
	//
	if offset.Dereference {
		value := machine.Get(addr)
		//
		if value.IsEmpty() {
			return memory.MaybeRelocatable{}, &vm.UnknownValueError{Address: addr}
		}
		//
		return value.Unwrap(), nil
	}
	//
	return memory.NewAddressValue(addr), nil
}
