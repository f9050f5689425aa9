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
	"github.com/feltvm/go-feltvm/pkg/util"
)

// Memory is the machine's segmented memory: a collection of independently
// growable segments, each an ordered sequence of optional cell values.
// Keeping segments independent means nothing needs to know the total memory
// size upfront; segments are stitched into one linear address space only
// after execution finishes.
//
// Memory assumes single-threaded use.  Segments grow monotonically during
// execution; they are never shrunk, moved or removed, so an address never
// becomes invalid mid-call.
type Memory struct {
	// One growable cell sequence per allocated segment, indexed by segment
	// index.  An empty option marks a cell which has never been written.
	data [][]util.Option[MaybeRelocatable]
}

// NewMemory constructs an empty memory, with no segments allocated.
func NewMemory() *Memory {
	return &Memory{}
}

// NumSegments returns the number of segments currently allocated.
func (m *Memory) NumSegments() uint {
	return uint(len(m.data))
}

// SegmentSize returns the number of cells (written or not) in a given
// segment, i.e. one past the highest offset written so far.  Unallocated
// segments have size zero.
func (m *Memory) SegmentSize(segment uint) uint64 {
	if segment >= uint(len(m.data)) {
		return 0
	}
	//
	return uint64(len(m.data[segment]))
}

// Insert writes a value into the cell at a given address, overwriting any
// prior contents.  The target segment must already have been allocated;
// within it, the cell sequence is extended as needed, filling any
// intervening cells with holes.
func (m *Memory) Insert(addr Relocatable, value MaybeRelocatable) error {
	if addr.SegmentIndex >= uint(len(m.data)) {
		return &UnallocatedSegmentError{Len: uint(len(m.data)), Accessed: addr.SegmentIndex}
	}
	//
	segment := m.data[addr.SegmentIndex]
	// Extend with holes up to the target offset
	for uint64(len(segment)) <= addr.Offset {
		segment = append(segment, util.None[MaybeRelocatable]())
	}
	//
	segment[addr.Offset] = util.Some(value)
	m.data[addr.SegmentIndex] = segment
	//
	return nil
}

// Get returns the value held by the cell at a given address, or an empty
// option if that cell has never been written.  Reads of an unallocated
// segment also yield an empty option: on the read path, an unallocated
// segment and an unwritten cell are deliberately indistinguishable, and only
// the write path (Insert) reports unallocated segments.
func (m *Memory) Get(addr Relocatable) util.Option[MaybeRelocatable] {
	if addr.SegmentIndex >= uint(len(m.data)) {
		return util.None[MaybeRelocatable]()
	}
	//
	segment := m.data[addr.SegmentIndex]
	//
	if addr.Offset >= uint64(len(segment)) {
		return util.None[MaybeRelocatable]()
	}
	//
	return segment[addr.Offset]
}
