// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vcl

import (
	"fmt"

	"github.com/ajroetker/go-vcl/vcl/asm"
)

// LEN is the number of float32 lanes in a Vec4f.
const LEN = 4

// Vec4f holds four float32 lanes. Lane 0 is the lowest address on load and
// store. The zero value has every lane equal to +0.
type Vec4f struct {
	xmm asm.M128
}

// New places a, b, c, d in lanes 0 to 3.
func New(a, b, c, d float32) Vec4f {
	return Vec4f{asm.M128{a, b, c, d}}
}

// Broadcast sets every lane to x.
func Broadcast(x float32) Vec4f {
	return Vec4f{asm.M128{x, x, x, x}}
}

// Zero returns a vector with every lane +0, the same as the zero value.
func Zero() Vec4f {
	return Vec4f{}
}

// FromArray loads the four elements of a.
func FromArray(a [LEN]float32) Vec4f {
	return Vec4f{asm.LoadU(&a[0])}
}

// FromSlice loads the first four elements of s. It returns ErrInvalidLength
// when s has fewer than four.
func FromSlice(s []float32) (Vec4f, error) {
	if len(s) < LEN {
		return Vec4f{}, fmt.Errorf("%w: got %d elements", ErrInvalidLength, len(s))
	}
	return Vec4f{asm.LoadU(&s[0])}, nil
}

// fromBits builds a vector from raw lane bit patterns.
func fromBits(b [LEN]uint32) Vec4f {
	return Vec4f{asm.FromBits(b)}
}

// splat builds a vector with every lane holding the bit pattern b.
func splat(b uint32) Vec4f {
	return Vec4f{asm.Splat(b)}
}

// Array returns the lanes as an array.
func (v Vec4f) Array() [LEN]float32 {
	return v.xmm
}

// Bits returns the IEEE-754 bit pattern of each lane.
func (v Vec4f) Bits() [LEN]uint32 {
	return v.xmm.Bits()
}

// String formats the lanes as "[a b c d]".
func (v Vec4f) String() string {
	return fmt.Sprint(v.Array())
}
