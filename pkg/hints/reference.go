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
	"fmt"

	"github.com/feltvm/go-feltvm/pkg/util/felt"
)

// Register identifies one of the two addressing registers relative to which
// symbolic references are expressed.
type Register uint8

const (
	// AP is the allocation pointer.  Offsets from it must be corrected for
	// control-flow drift before use.
	AP Register = iota
	// FP is the frame pointer, stable within a scope.
	FP
)

func (r Register) String() string {
	if r == AP {
		return "ap"
	}
	//
	return "fp"
}

// OffsetValue is one node kind of the (closed) expression language in which
// symbolic references describe their offsets.  The three kinds are an
// immediate field element, a literal offset, and a register-relative offset
// with optional dereference.
type OffsetValue interface {
	fmt.Stringer
	isOffsetValue()
}

// Immediate is a literal field element baked into the reference at compile
// time.  A reference whose primary offset is an immediate denotes that value
// directly rather than any memory location.
type Immediate struct {
	Value felt.Element
}

// Literal is a fixed offset added directly to an already-computed address,
// independent of registers and of memory contents.
type Literal struct {
	Value int
}

// RegisterRef is an offset from one of the two addressing registers.  When
// Dereference is set, the cell at the resulting address is read and its
// contents used, rather than the address itself.
type RegisterRef struct {
	Register Register
	Offset   int
	// Dereference the addressed cell rather than using the address.
	Dereference bool
}

func (Immediate) isOffsetValue() {}

func (Literal) isOffsetValue() {}

func (RegisterRef) isOffsetValue() {}

func (o Immediate) String() string {
	return o.Value.String()
}

func (o Literal) String() string {
	return fmt.Sprintf("%d", o.Value)
}

func (o RegisterRef) String() string {
	str := fmt.Sprintf("%s + %d", o.Register, o.Offset)
	//
	if o.Dereference {
		return fmt.Sprintf("[%s]", str)
	}
	//
	return str
}

// HintReference is the compile-time description of where a named variable
// lives, expressed relative to the machine registers.  References are
// produced during program loading and are immutable thereafter.
type HintReference struct {
	// Primary offset expression.
	Offset1 OffsetValue
	// Secondary offset expression, added to the primary (Literal{0} when
	// absent).
	Offset2 OffsetValue
	// Dereference indicates the variable's value is the contents of the
	// addressed cell, rather than the address itself.
	Dereference bool
	// ApTracking records the tracking context at the point the reference was
	// defined, against which drift is measured.
	ApTracking ApTracking
}

// NewSimpleReference constructs a reference to the (dereferenced) cell at a
// fixed offset from the frame pointer, which is how ordinary local variables
// are referenced.
func NewSimpleReference(offset int) HintReference {
	return HintReference{
		Offset1:     RegisterRef{Register: FP, Offset: offset},
		Offset2:     Literal{0},
		Dereference: true,
	}
}

// IdsData maps variable names to the reference describing where each lives.
// One table is produced per hint call site during program loading; lookups
// are exact-name matches, and the table is never mutated after creation.
type IdsData map[string]HintReference
