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
	"github.com/feltvm/go-feltvm/pkg/vm/memory"
)

// ApTracking locates a point in the program within the compiler's allocation
// tracking: a group, within which the allocation pointer moves by a
// statically-known amount, and the offset accumulated so far within that
// group.  Tracking restarts (with a fresh group) wherever control flow makes
// the pointer's movement unknowable statically.
type ApTracking struct {
	Group  int `json:"group"`
	Offset int `json:"offset"`
}

// ApplyApTrackingCorrection adjusts the current value of the allocation
// pointer back to what it was when a reference was defined, by subtracting
// the drift accumulated between the reference's tracking context and the
// current one.  Both contexts must belong to the same tracking group,
// otherwise the drift is unknowable and resolution fails.
func ApplyApTrackingCorrection(ap memory.Relocatable, ref ApTracking, current ApTracking) (memory.Relocatable, error) {
	if ref.Group != current.Group {
		return memory.Relocatable{}, &InvalidTrackingGroupError{RefGroup: ref.Group, CurrentGroup: current.Group}
	}
	// Drift is how far ap has advanced since the reference was defined
	return ap.AddInt(int64(ref.Offset) - int64(current.Offset))
}
