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
package felt

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Element is a field element of the STARK prime field (p = 2^251 + 17*2^192 +
// 1), which is the domain of every integer value held in machine memory.  It
// wraps fp.Element with value semantics: operations return fresh elements and
// never mutate their receiver.  The zero value represents 0 and is ready for
// use.
type Element struct {
	inner fp.Element
}

// New constructs a field element from a given uint64.
func New(val uint64) Element {
	var elem fp.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// FromBigInt constructs a field element from a given big.Int, reducing it
// modulo the field order.  Negative values are mapped to their additive
// inverse, i.e. -1 becomes p - 1.
func FromBigInt(val *big.Int) Element {
	var elem fp.Element
	//
	elem.SetBigInt(val)
	//
	return Element{elem}
}

// FromString constructs a field element from a decimal or (0x-prefixed)
// hexadecimal string, reducing it modulo the field order.
func FromString(str string) (Element, error) {
	var elem fp.Element
	//
	if _, err := elem.SetString(str); err != nil {
		return Element{}, fmt.Errorf("invalid field element %q: %w", str, err)
	}
	//
	return Element{elem}, nil
}

// Modulus returns the order of the underlying field.
func Modulus() *big.Int {
	return fp.Modulus()
}

// Add x + y
func (x Element) Add(y Element) Element {
	var elem fp.Element
	//
	elem.Add(&x.inner, &y.inner)
	//
	return Element{elem}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fp.Element
	//
	elem.Sub(&x.inner, &y.inner)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fp.Element
	//
	elem.Mul(&x.inner, &y.inner)
	//
	return Element{elem}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.inner.Cmp(&y.inner)
}

// Equal checks whether x and y represent the same field element.
func (x Element) Equal(y Element) bool {
	return x.inner.Equal(&y.inner)
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsUint64 checks whether this value fits within a uint64.
func (x Element) IsUint64() bool {
	return x.inner.IsUint64()
}

// Uint64 returns the numerical value of x.  It panics if x does not fit
// within a uint64; callers are expected to check IsUint64 first.
func (x Element) Uint64() uint64 {
	if !x.inner.IsUint64() {
		panic(fmt.Errorf("cannot convert to uint64: %s", x.inner.String()))
	}
	//
	return x.inner.Uint64()
}

// BigInt returns the numerical value of x as a (fresh) big.Int.
func (x Element) BigInt() *big.Int {
	var val big.Int
	//
	x.inner.BigInt(&val)
	//
	return &val
}

func (x Element) String() string {
	return x.inner.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.inner.Text(base)
}
