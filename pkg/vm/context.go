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
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// RunContext holds the machine's three registers.  The execution loop
// advances them between steps; everything else (symbolic reference
// resolution in particular) only ever reads them.
type RunContext struct {
	// Pc is the program counter, addressing the current instruction.
	Pc memory.Relocatable
	// Ap is the allocation pointer, addressing the next free cell of the
	// execution segment.  Its value drifts with the control flow taken, which
	// is what ap tracking corrects for.
	Ap memory.Relocatable
	// Fp is the frame pointer, addressing the base of the current call
	// frame.  It is stable for the duration of a scope.
	Fp memory.Relocatable
}
