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
package memory

import (
	"fmt"

	"github.com/feltvm/go-feltvm/pkg/util/felt"
)

// Relocatable is a segment-relative address, i.e. an offset within a given
// memory segment.  Addresses remain segment-relative for the whole of
// execution; flattening them into a single linear address space is a separate
// (post-execution) concern.
type Relocatable struct {
	// Segment in which this address lives.
	SegmentIndex uint
	// Offset within that segment.
	Offset uint64
}

// NewRelocatable constructs an address from a given segment index and offset.
func NewRelocatable(segment uint, offset uint64) Relocatable {
	return Relocatable{segment, offset}
}

// AddUint returns the address delta cells further into the same segment.
func (r Relocatable) AddUint(delta uint64) Relocatable {
	return Relocatable{r.SegmentIndex, r.Offset + delta}
}

// AddInt returns the address delta cells away within the same segment, where
// delta may be negative.  Fails if the resulting offset would be negative.
func (r Relocatable) AddInt(delta int64) (Relocatable, error) {
	if delta < 0 && uint64(-delta) > r.Offset {
		return Relocatable{}, &OffsetUnderflowError{Address: r, Delta: uint64(-delta)}
	} else if delta < 0 {
		return Relocatable{r.SegmentIndex, r.Offset - uint64(-delta)}, nil
	}
	//
	return Relocatable{r.SegmentIndex, r.Offset + uint64(delta)}, nil
}

// AddFelt returns the address delta cells further into the same segment,
// where delta is a field element.  Fails if delta (or the resulting offset)
// does not fit within an offset.
func (r Relocatable) AddFelt(delta felt.Element) (Relocatable, error) {
	if !delta.IsUint64() {
		return Relocatable{}, &OffsetOverflowError{Address: r, Delta: delta}
	}
	//
	offset := delta.Uint64()
	//
	if r.Offset+offset < r.Offset {
		return Relocatable{}, &OffsetOverflowError{Address: r, Delta: delta}
	}
	//
	return Relocatable{r.SegmentIndex, r.Offset + offset}, nil
}

// Sub returns the distance (as a field element) between this address and
// another address in the same segment.  Fails if the segments differ, or if
// the other address lies beyond this one.
func (r Relocatable) Sub(other Relocatable) (felt.Element, error) {
	if r.SegmentIndex != other.SegmentIndex {
		return felt.Element{}, &SegmentMismatchError{Lhs: r, Rhs: other}
	} else if other.Offset > r.Offset {
		return felt.Element{}, &OffsetUnderflowError{Address: r, Delta: other.Offset}
	}
	//
	return felt.New(r.Offset - other.Offset), nil
}

// Cmp provides a total ordering of addresses, ordering first by segment and
// then by offset.
func (r Relocatable) Cmp(other Relocatable) int {
	switch {
	case r.SegmentIndex < other.SegmentIndex:
		return -1
	case r.SegmentIndex > other.SegmentIndex:
		return 1
	case r.Offset < other.Offset:
		return -1
	case r.Offset > other.Offset:
		return 1
	}
	//
	return 0
}

func (r Relocatable) String() string {
	return fmt.Sprintf("%d:%d", r.SegmentIndex, r.Offset)
}

// ============================================================================

// valueKind discriminates the two variants of a memory cell value.
type valueKind uint8

const (
	feltKind valueKind = iota
	addressKind
)

// MaybeRelocatable is the value held by a single memory cell: either a field
// element or a segment-relative address.  Exactly one variant is ever
// present, and neither can be extracted without checking which.  The zero
// value represents the field element 0.
type MaybeRelocatable struct {
	kind valueKind
	felt felt.Element
	addr Relocatable
}

// NewFeltValue constructs a cell value holding a field element.
func NewFeltValue(val felt.Element) MaybeRelocatable {
	return MaybeRelocatable{kind: feltKind, felt: val}
}

// NewAddressValue constructs a cell value holding an address.
func NewAddressValue(addr Relocatable) MaybeRelocatable {
	return MaybeRelocatable{kind: addressKind, addr: addr}
}

// IsFelt checks whether this value holds a field element.
func (v MaybeRelocatable) IsFelt() bool {
	return v.kind == feltKind
}

// IsAddress checks whether this value holds an address.
func (v MaybeRelocatable) IsAddress() bool {
	return v.kind == addressKind
}

// Felt returns the field element held by this value, when it holds one.
func (v MaybeRelocatable) Felt() (felt.Element, bool) {
	return v.felt, v.kind == feltKind
}

// Address returns the address held by this value, when it holds one.
func (v MaybeRelocatable) Address() (Relocatable, bool) {
	return v.addr, v.kind == addressKind
}

// Equal checks whether two cell values hold the same variant and the same
// contents.
func (v MaybeRelocatable) Equal(other MaybeRelocatable) bool {
	if v.kind != other.kind {
		return false
	} else if v.kind == feltKind {
		return v.felt.Equal(other.felt)
	}
	//
	return v.addr == other.addr
}

// Add sums two cell values.  Field elements add in the field; an address on
// the left adds a field element on the right as an offset.  Adding an address
// to a field element, or two addresses together, is meaningless and fails.
func (v MaybeRelocatable) Add(other MaybeRelocatable) (MaybeRelocatable, error) {
	if v.kind == feltKind && other.kind == feltKind {
		return NewFeltValue(v.felt.Add(other.felt)), nil
	} else if v.kind == addressKind && other.kind == feltKind {
		addr, err := v.addr.AddFelt(other.felt)
		//
		if err != nil {
			return MaybeRelocatable{}, err
		}
		//
		return NewAddressValue(addr), nil
	}
	//
	return MaybeRelocatable{}, &AddressAdditionError{Lhs: v, Rhs: other}
}

func (v MaybeRelocatable) String() string {
	if v.kind == addressKind {
		return v.addr.String()
	}
	//
	return v.felt.String()
}
