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
)

// hintError marks the error types owned by this package, so the accessor
// layer can tell them apart from lower-layer (machine or memory) errors
// which must be wrapped rather than surfaced bare.
type hintError interface {
	error
	isHintError()
}

// UnknownIdentifierError signals a variable name absent from the reference
// table; resolution cannot even start.
type UnknownIdentifierError struct {
	// Name of the missing variable.
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Name)
}

// InvalidTrackingGroupError signals a reference whose tracking context
// belongs to a different group than the current one, meaning the allocation
// pointer's drift since the reference was defined cannot be known.
type InvalidTrackingGroupError struct {
	RefGroup     int
	CurrentGroup int
}

func (e *InvalidTrackingGroupError) Error() string {
	return fmt.Sprintf("cannot correct for drift across tracking groups (%d vs %d)", e.RefGroup, e.CurrentGroup)
}

// NoRegisterInReferenceError signals an attempt to compute an address for a
// reference whose primary offset is not register-relative (i.e. an immediate,
// which denotes a value rather than a location).
type NoRegisterInReferenceError struct{}

func (e *NoRegisterInReferenceError) Error() string {
	return "reference has no register-relative primary offset"
}

// InvalidOffsetError signals a reference whose secondary offset is of a kind
// which cannot contribute to an address (i.e. an immediate).
type InvalidOffsetError struct {
	// Offending offset expression.
	Offset OffsetValue
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid secondary offset in reference: %s", e.Offset)
}

// InternalError wraps a lower-level machine or memory error crossing the
// accessor boundary, preserving its identity rather than translating it
// away: Unwrap yields the original error for matching.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func (*UnknownIdentifierError) isHintError() {}

func (*InvalidTrackingGroupError) isHintError() {}

func (*NoRegisterInReferenceError) isHintError() {}

func (*InvalidOffsetError) isHintError() {}

func (*InternalError) isHintError() {}

// wrap classifies an error crossing into the accessor layer: errors this
// package owns pass through unchanged, while machine and memory errors are
// wrapped in an InternalError.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	//
	if _, ok := err.(hintError); ok {
		return err
	}
	//
	return &InternalError{Err: err}
}
