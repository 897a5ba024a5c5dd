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

import "github.com/ajroetker/go-vcl/vcl/asm"

// Add returns v + b lane by lane.
func (v Vec4f) Add(b Vec4f) Vec4f { return Vec4f{asm.AddPS(v.xmm, b.xmm)} }

// Sub returns v - b lane by lane.
func (v Vec4f) Sub(b Vec4f) Vec4f { return Vec4f{asm.SubPS(v.xmm, b.xmm)} }

// Mul returns v * b lane by lane.
func (v Vec4f) Mul(b Vec4f) Vec4f { return Vec4f{asm.MulPS(v.xmm, b.xmm)} }

// Div returns v / b lane by lane.
func (v Vec4f) Div(b Vec4f) Vec4f { return Vec4f{asm.DivPS(v.xmm, b.xmm)} }

// And returns the bitwise AND of the lane bit patterns.
func (v Vec4f) And(b Vec4f) Vec4f { return Vec4f{asm.AndPS(v.xmm, b.xmm)} }

// Or returns the bitwise OR of the lane bit patterns.
func (v Vec4f) Or(b Vec4f) Vec4f { return Vec4f{asm.OrPS(v.xmm, b.xmm)} }

// Xor returns the bitwise XOR of the lane bit patterns.
func (v Vec4f) Xor(b Vec4f) Vec4f { return Vec4f{asm.XorPS(v.xmm, b.xmm)} }

// Neg flips the sign bit of every lane, so +0 becomes -0.
func (v Vec4f) Neg() Vec4f {
	return Vec4f{asm.XorPS(v.xmm, asm.Splat(asm.SignBit))}
}

func (v *Vec4f) AddAssign(b Vec4f) { v.xmm = asm.AddPS(v.xmm, b.xmm) }
func (v *Vec4f) SubAssign(b Vec4f) { v.xmm = asm.SubPS(v.xmm, b.xmm) }
func (v *Vec4f) MulAssign(b Vec4f) { v.xmm = asm.MulPS(v.xmm, b.xmm) }
func (v *Vec4f) DivAssign(b Vec4f) { v.xmm = asm.DivPS(v.xmm, b.xmm) }
func (v *Vec4f) AndAssign(b Vec4f) { v.xmm = asm.AndPS(v.xmm, b.xmm) }
func (v *Vec4f) OrAssign(b Vec4f)  { v.xmm = asm.OrPS(v.xmm, b.xmm) }
func (v *Vec4f) XorAssign(b Vec4f) { v.xmm = asm.XorPS(v.xmm, b.xmm) }

const allLanes = 1<<LEN - 1

// Equal reports whether every lane of v compares equal to the same lane of b
// under float32 ==: NaN lanes never match and -0 matches +0.
func (v Vec4f) Equal(b Vec4f) bool {
	return asm.CmpEqMask(v.xmm, b.xmm) == allLanes
}

// EqualArray is Equal against the elements of a.
func (v Vec4f) EqualArray(a [LEN]float32) bool {
	for i, x := range v.Array() {
		if x != a[i] {
			return false
		}
	}
	return true
}
