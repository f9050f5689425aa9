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
	"fmt"

	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// ExpectedIntegerError signals a typed read which found a cell holding an
// address where a field element was required.  It carries the actual stored
// value for diagnostics.
type ExpectedIntegerError struct {
	// Value actually found.
	Value memory.MaybeRelocatable
}

func (e *ExpectedIntegerError) Error() string {
	return fmt.Sprintf("expected integer, found: %s", e.Value)
}

// ExpectedRelocatableError signals a typed read which found a cell holding a
// field element where an address was required.  It carries the actual stored
// value for diagnostics.
type ExpectedRelocatableError struct {
	// Value actually found.
	Value memory.MaybeRelocatable
}

func (e *ExpectedRelocatableError) Error() string {
	return fmt.Sprintf("expected relocatable, found: %s", e.Value)
}

// UnknownValueError signals a read of a cell which has never been written.
type UnknownValueError struct {
	// Address of the unwritten cell.
	Address memory.Relocatable
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("no value at address %s", e.Address)
}
