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

// UnallocatedSegmentError signals a write which targeted a segment that does
// not (yet) exist.  Segments are only ever created by explicit allocation, so
// this always indicates the writer ran ahead of the allocator.
type UnallocatedSegmentError struct {
	// Number of segments currently allocated.
	Len uint
	// Segment index the write targeted.
	Accessed uint
}

func (e *UnallocatedSegmentError) Error() string {
	return fmt.Sprintf("cannot insert into segment #%d; memory only has %d segments", e.Accessed, e.Len)
}

// OffsetUnderflowError signals address arithmetic whose result would lie
// before the start of the segment.
type OffsetUnderflowError struct {
	// Address being adjusted.
	Address Relocatable
	// Amount by which it was being moved backwards.
	Delta uint64
}

func (e *OffsetUnderflowError) Error() string {
	return fmt.Sprintf("cannot subtract %d from offset of address %s", e.Delta, e.Address)
}

// OffsetOverflowError signals address arithmetic whose result would not fit
// within an offset.
type OffsetOverflowError struct {
	// Address being adjusted.
	Address Relocatable
	// Field element being added to its offset.
	Delta felt.Element
}

func (e *OffsetOverflowError) Error() string {
	return fmt.Sprintf("adding %s to address %s exceeds the maximum offset", e.Delta, e.Address)
}

// SegmentMismatchError signals subtraction of two addresses which live in
// different segments, for which no distance is defined.
type SegmentMismatchError struct {
	Lhs Relocatable
	Rhs Relocatable
}

func (e *SegmentMismatchError) Error() string {
	return fmt.Sprintf("cannot subtract addresses from different segments (%s vs %s)", e.Lhs, e.Rhs)
}

// AddressAdditionError signals an attempt to add two cell values for which
// addition is undefined (i.e. anything other than felt + felt or address +
// felt).
type AddressAdditionError struct {
	Lhs MaybeRelocatable
	Rhs MaybeRelocatable
}

func (e *AddressAdditionError) Error() string {
	return fmt.Sprintf("cannot add %s and %s", e.Lhs, e.Rhs)
}
