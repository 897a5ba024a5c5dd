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
	"unsafe"

	"github.com/ajroetker/go-vcl/vcl/asm"
)

// insertMasks is a sliding window: the four lanes starting at index 4-i select
// lane i alone.
var insertMasks = [2 * LEN]uint32{0, 0, 0, 0, asm.AllOnes, 0, 0, 0}

// Insert returns a copy of v with lane i replaced by x. It panics with
// ErrIndexOutOfRange unless 0 <= i < 4.
func (v Vec4f) Insert(i int, x float32) Vec4f {
	if uint(i) >= LEN {
		panicIndex("Insert", i)
	}
	if sse41() {
		return insertSSE41(v, i, x)
	}
	return insertSSE2(v, i, x)
}

func insertSSE41(v Vec4f, i int, x float32) Vec4f {
	return Vec4f{asm.InsertPS(v.xmm, i, x)}
}

func insertSSE2(v Vec4f, i int, x float32) Vec4f {
	mask := asm.LoadU((*float32)(unsafe.Pointer(&insertMasks[LEN-i])))
	return Vec4f{asm.SelectPS(mask, asm.M128{x, x, x, x}, v.xmm)}
}

// Get returns a pointer to lane i, or nil when i is out of range. Writes through
// the pointer change v.
func (v *Vec4f) Get(i int) *float32 {
	if uint(i) >= LEN {
		return nil
	}
	return &v.xmm[i]
}

// GetUnchecked returns a pointer to lane i without checking i. The caller
// guarantees 0 <= i < 4.
func (v *Vec4f) GetUnchecked(i int) *float32 {
	return (*float32)(unsafe.Add(unsafe.Pointer(&v.xmm), uintptr(i)*4))
}

// Index returns a pointer to lane i. It panics with ErrIndexOutOfRange unless
// 0 <= i < 4.
func (v *Vec4f) Index(i int) *float32 {
	p := v.Get(i)
	if p == nil {
		panicIndex("Index", i)
	}
	return p
}

// Lane returns the value of lane i. It panics with ErrIndexOutOfRange unless
// 0 <= i < 4.
func (v Vec4f) Lane(i int) float32 {
	return *v.Index(i)
}
