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
	"errors"
	"math/big"
	"testing"

	"github.com/feltvm/go-feltvm/pkg/util/felt"
	"github.com/stretchr/testify/assert"
)

func TestRelocatableAdd(t *testing.T) {
	addr := NewRelocatable(2, 5)
	//
	assert.Equal(t, NewRelocatable(2, 8), addr.AddUint(3))
	//
	forward, err := addr.AddInt(3)
	assert.NoError(t, err)
	assert.Equal(t, NewRelocatable(2, 8), forward)
	//
	backward, err := addr.AddInt(-5)
	assert.NoError(t, err)
	assert.Equal(t, NewRelocatable(2, 0), backward)
}

func TestRelocatableAddUnderflow(t *testing.T) {
	_, err := NewRelocatable(0, 2).AddInt(-3)
	//
	var underflow *OffsetUnderflowError
	assert.True(t, errors.As(err, &underflow))
	assert.Equal(t, uint64(3), underflow.Delta)
}

func TestRelocatableAddFelt(t *testing.T) {
	addr, err := NewRelocatable(1, 1).AddFelt(felt.New(41))
	assert.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 42), addr)
	// Offsets beyond uint64 range cannot be represented
	wide := felt.FromBigInt(new(big.Int).Lsh(big.NewInt(1), 100))
	_, err = NewRelocatable(1, 1).AddFelt(wide)
	//
	var overflow *OffsetOverflowError
	assert.True(t, errors.As(err, &overflow))
}

func TestRelocatableSub(t *testing.T) {
	distance, err := NewRelocatable(1, 10).Sub(NewRelocatable(1, 4))
	assert.NoError(t, err)
	assert.True(t, felt.New(6).Equal(distance))
	// Different segments have no defined distance
	_, err = NewRelocatable(1, 10).Sub(NewRelocatable(2, 4))
	//
	var mismatch *SegmentMismatchError
	assert.True(t, errors.As(err, &mismatch))
	// Nor does a negative distance
	_, err = NewRelocatable(1, 4).Sub(NewRelocatable(1, 10))
	assert.Error(t, err)
}

func TestRelocatableCmp(t *testing.T) {
	assert.Equal(t, 0, NewRelocatable(1, 5).Cmp(NewRelocatable(1, 5)))
	assert.Equal(t, -1, NewRelocatable(1, 4).Cmp(NewRelocatable(1, 5)))
	assert.Equal(t, 1, NewRelocatable(1, 6).Cmp(NewRelocatable(1, 5)))
	assert.Equal(t, -1, NewRelocatable(0, 9).Cmp(NewRelocatable(1, 5)))
}

func TestRelocatableString(t *testing.T) {
	assert.Equal(t, "1:42", NewRelocatable(1, 42).String())
}

func TestMaybeRelocatableVariants(t *testing.T) {
	number := NewFeltValue(felt.New(7))
	pointer := NewAddressValue(NewRelocatable(0, 3))
	//
	assert.True(t, number.IsFelt())
	assert.False(t, number.IsAddress())
	assert.True(t, pointer.IsAddress())
	//
	element, ok := number.Felt()
	assert.True(t, ok)
	assert.True(t, felt.New(7).Equal(element))
	//
	_, ok = number.Address()
	assert.False(t, ok)
	//
	addr, ok := pointer.Address()
	assert.True(t, ok)
	assert.Equal(t, NewRelocatable(0, 3), addr)
}

func TestMaybeRelocatableZeroValue(t *testing.T) {
	var value MaybeRelocatable
	//
	assert.True(t, value.IsFelt())
	assert.True(t, value.Equal(NewFeltValue(felt.New(0))))
}

func TestMaybeRelocatableEqual(t *testing.T) {
	assert.True(t, NewFeltValue(felt.New(1)).Equal(NewFeltValue(felt.New(1))))
	assert.False(t, NewFeltValue(felt.New(1)).Equal(NewFeltValue(felt.New(2))))
	assert.False(t, NewFeltValue(felt.New(1)).Equal(NewAddressValue(NewRelocatable(0, 1))))
	assert.True(t, NewAddressValue(NewRelocatable(0, 1)).Equal(NewAddressValue(NewRelocatable(0, 1))))
}

func TestMaybeRelocatableAdd(t *testing.T) {
	sum, err := NewFeltValue(felt.New(1)).Add(NewFeltValue(felt.New(2)))
	assert.NoError(t, err)
	assert.True(t, sum.Equal(NewFeltValue(felt.New(3))))
	//
	moved, err := NewAddressValue(NewRelocatable(1, 2)).Add(NewFeltValue(felt.New(3)))
	assert.NoError(t, err)
	assert.True(t, moved.Equal(NewAddressValue(NewRelocatable(1, 5))))
	// Addresses cannot be summed
	lhs := NewAddressValue(NewRelocatable(1, 2))
	_, err = lhs.Add(lhs)
	//
	var invalid *AddressAdditionError
	assert.True(t, errors.As(err, &invalid))
	// Nor can an address be added on the right of a felt
	_, err = NewFeltValue(felt.New(1)).Add(lhs)
	assert.Error(t, err)
}
