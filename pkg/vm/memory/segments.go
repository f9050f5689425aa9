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

// SegmentManager owns a memory and is the only way segments come into
// existence.  Allocation is always explicit: memory itself refuses writes to
// segments the manager has not created.
type SegmentManager struct {
	memory *Memory
}

// NewSegmentManager constructs a segment manager over a fresh, empty memory.
func NewSegmentManager() *SegmentManager {
	return &SegmentManager{NewMemory()}
}

// Memory returns the underlying memory.
func (p *SegmentManager) Memory() *Memory {
	return p.memory
}

// NumSegments returns the number of segments allocated so far.
func (p *SegmentManager) NumSegments() uint {
	return p.memory.NumSegments()
}

// AddSegment allocates a new (empty) segment, returning its base address.
func (p *SegmentManager) AddSegment() Relocatable {
	index := uint(len(p.memory.data))
	p.memory.data = append(p.memory.data, nil)
	//
	return NewRelocatable(index, 0)
}

// LoadData writes a contiguous run of values starting at a given base
// address, returning the address one past the last cell written.  This is
// how loaders publish program data into machine memory.
func (p *SegmentManager) LoadData(base Relocatable, data []MaybeRelocatable) (Relocatable, error) {
	for i, value := range data {
		if err := p.memory.Insert(base.AddUint(uint64(i)), value); err != nil {
			return Relocatable{}, err
		}
	}
	//
	return base.AddUint(uint64(len(data))), nil
}
