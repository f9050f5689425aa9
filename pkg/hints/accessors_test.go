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
	"errors"
	"testing"

	"github.com/feltvm/go-feltvm/pkg/util/felt"
	"github.com/feltvm/go-feltvm/pkg/vm"
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
	"github.com/stretchr/testify/assert"
)

func TestGetPtrFromVarNameImmediateSecondary(t *testing.T) {
	machine := newTestMachine()
	// The cell at fp holds 0:0; dereferencing it and adding the literal 2
	// yields 0:2, which is the pointer itself (no outer dereference).
	assert.NoError(t, machine.Insert(machine.RunContext().Fp,
		memory.NewAddressValue(memory.NewRelocatable(0, 0))))
	//
	ref := HintReference{
		Offset1: RegisterRef{Register: FP, Offset: 0, Dereference: true},
		Offset2: Literal{Value: 2},
	}
	ids := IdsData{"imm": ref}
	//
	addr, err := GetPtrFromVarName("imm", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.Equal(t, memory.NewRelocatable(0, 2), addr)
}

func TestGetPtrFromVarNameValid(t *testing.T) {
	machine := newTestMachine()
	assert.NoError(t, machine.Insert(machine.RunContext().Fp,
		memory.NewAddressValue(memory.NewRelocatable(0, 0))))
	//
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	addr, err := GetPtrFromVarName("value", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.Equal(t, memory.NewRelocatable(0, 0), addr)
}

func TestGetPtrFromVarNameTypeMismatch(t *testing.T) {
	machine := newTestMachine()
	stored := memory.NewFeltValue(felt.New(0))
	assert.NoError(t, machine.Insert(machine.RunContext().Fp, stored))
	//
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	_, err := GetPtrFromVarName("value", machine, ids, ApTracking{})
	// The machine error passes through wrapped, preserving its identity and
	// the value actually found.
	var internal *InternalError
	assert.True(t, errors.As(err, &internal))
	//
	var mismatch *vm.ExpectedRelocatableError
	assert.True(t, errors.As(err, &mismatch))
	assert.True(t, stored.Equal(mismatch.Value))
}

func TestGetPtrFromVarNameNoDereference(t *testing.T) {
	machine := newTestMachine()
	// Without the dereference flag, the computed address itself denotes the
	// pointer target, regardless of memory contents.
	ref := HintReference{Offset1: RegisterRef{Register: FP, Offset: 3}, Offset2: Literal{}}
	ids := IdsData{"value": ref}
	//
	addr, err := GetPtrFromVarName("value", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.Equal(t, memory.NewRelocatable(1, 3), addr)
}

func TestGetRelocatableFromVarNameValid(t *testing.T) {
	machine := newTestMachine()
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	addr, err := GetRelocatableFromVarName("value", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.Equal(t, memory.NewRelocatable(1, 0), addr)
}

func TestGetAddressFromVarName(t *testing.T) {
	machine := newTestMachine()
	ids := IdsData{"value": NewSimpleReference(2)}
	//
	value, err := GetAddressFromVarName("value", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.True(t, value.Equal(memory.NewAddressValue(memory.NewRelocatable(1, 2))))
}

func TestGetIntegerFromVarNameValid(t *testing.T) {
	machine := newTestMachine()
	assert.NoError(t, machine.Insert(machine.RunContext().Fp, memory.NewFeltValue(felt.New(1))))
	//
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	element, err := GetIntegerFromVarName("value", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.True(t, felt.New(1).Equal(element))
}

func TestGetIntegerFromVarNameTypeMismatch(t *testing.T) {
	machine := newTestMachine()
	stored := memory.NewAddressValue(memory.NewRelocatable(0, 0))
	assert.NoError(t, machine.Insert(machine.RunContext().Fp, stored))
	//
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	_, err := GetIntegerFromVarName("value", machine, ids, ApTracking{})
	//
	var internal *InternalError
	assert.True(t, errors.As(err, &internal))
	//
	var mismatch *vm.ExpectedIntegerError
	assert.True(t, errors.As(err, &mismatch))
	assert.True(t, stored.Equal(mismatch.Value))
}

func TestGetIntegerFromVarNameImmediate(t *testing.T) {
	machine := newTestMachine()
	// An immediate reference yields its value without touching memory.
	ref := HintReference{Offset1: Immediate{Value: felt.New(42)}, Offset2: Literal{}}
	ids := IdsData{"imm": ref}
	//
	element, err := GetIntegerFromVarName("imm", machine, ids, ApTracking{})
	assert.NoError(t, err)
	assert.True(t, felt.New(42).Equal(element))
}

func TestGetIntegerFromVarNameUnset(t *testing.T) {
	machine := newTestMachine()
	ids := IdsData{"value": NewSimpleReference(0)}
	// A never-written cell reports absence, not a type mismatch.
	_, err := GetIntegerFromVarName("value", machine, ids, ApTracking{})
	//
	var unknown *vm.UnknownValueError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, memory.NewRelocatable(1, 0), unknown.Address)
}

func TestGetMaybeFromVarName(t *testing.T) {
	tests := []struct {
		name  string
		value memory.MaybeRelocatable
	}{
		{"felt", memory.NewFeltValue(felt.New(99))},
		{"address", memory.NewAddressValue(memory.NewRelocatable(0, 5))},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newTestMachine()
			assert.NoError(t, machine.Insert(machine.RunContext().Fp, tt.value))
			//
			ids := IdsData{"value": NewSimpleReference(0)}
			//
			read, err := GetMaybeFromVarName("value", machine, ids, ApTracking{})
			assert.NoError(t, err)
			assert.True(t, tt.value.Equal(read))
		})
	}
}

func TestGetMaybeFromVarNameUnset(t *testing.T) {
	machine := newTestMachine()
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	_, err := GetMaybeFromVarName("value", machine, ids, ApTracking{})
	//
	var unknown *vm.UnknownValueError
	assert.True(t, errors.As(err, &unknown))
}

func TestUnknownIdentifier(t *testing.T) {
	machine := newTestMachine()
	ids := IdsData{"value": NewSimpleReference(0)}
	// Every accessor fails identically for a name missing from the table,
	// regardless of machine state.
	var unknown *UnknownIdentifierError
	//
	_, err := GetRelocatableFromVarName("missing", machine, ids, ApTracking{})
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
	//
	_, err = GetPtrFromVarName("missing", machine, ids, ApTracking{})
	assert.True(t, errors.As(err, &unknown))
	//
	_, err = GetIntegerFromVarName("missing", machine, ids, ApTracking{})
	assert.True(t, errors.As(err, &unknown))
	//
	_, err = GetMaybeFromVarName("missing", machine, ids, ApTracking{})
	assert.True(t, errors.As(err, &unknown))
	//
	err = InsertValueFromVarName("missing", memory.NewFeltValue(felt.New(1)), machine, ids, ApTracking{})
	assert.True(t, errors.As(err, &unknown))
}

func TestInsertValueFromVarNameRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value memory.MaybeRelocatable
	}{
		{"felt", memory.NewFeltValue(felt.New(123))},
		{"address", memory.NewAddressValue(memory.NewRelocatable(0, 9))},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := newTestMachine()
			ids := IdsData{"value": NewSimpleReference(0)}
			//
			assert.NoError(t, InsertValueFromVarName("value", tt.value, machine, ids, ApTracking{}))
			//
			read, err := GetMaybeFromVarName("value", machine, ids, ApTracking{})
			assert.NoError(t, err)
			assert.True(t, tt.value.Equal(read))
		})
	}
}

func TestInsertValueIntoAp(t *testing.T) {
	machine := newTestMachine()
	machine.RunContext().Ap = memory.NewRelocatable(1, 6)
	//
	value := memory.NewFeltValue(felt.New(7))
	assert.NoError(t, InsertValueIntoAp(machine, value))
	//
	read := machine.Get(memory.NewRelocatable(1, 6))
	assert.True(t, read.HasValue())
	assert.True(t, value.Equal(read.Unwrap()))
}

func TestInsertValueUnallocatedSegment(t *testing.T) {
	machine := newTestMachine()
	machine.RunContext().Fp = memory.NewRelocatable(4, 0)
	//
	ids := IdsData{"value": NewSimpleReference(0)}
	//
	err := InsertValueFromVarName("value", memory.NewFeltValue(felt.New(1)), machine, ids, ApTracking{})
	// The memory error surfaces through the internal wrapper with its
	// payload intact.
	var unallocated *memory.UnallocatedSegmentError
	assert.True(t, errors.As(err, &unallocated))
	assert.Equal(t, uint(2), unallocated.Len)
	assert.Equal(t, uint(4), unallocated.Accessed)
}

func TestGetReferenceFromVarName(t *testing.T) {
	ref := NewSimpleReference(5)
	ids := IdsData{"value": ref}
	//
	got, err := GetReferenceFromVarName("value", ids)
	assert.NoError(t, err)
	assert.Equal(t, ref, got)
	//
	_, err = GetReferenceFromVarName("missing", ids)
	assert.Error(t, err)
}
