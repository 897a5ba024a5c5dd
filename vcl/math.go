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
	"math"

	"github.com/ajroetker/go-vcl/vcl/asm"
)

// PowNaN is the bit pattern of the quiet NaN Pow returns for math.MinInt32.
const PowNaN uint32 = 0x7FC00100

// Squared returns v * v.
func (v Vec4f) Squared() Vec4f { return v.Mul(v) }

// Sqrt returns the IEEE square root of every lane.
func (v Vec4f) Sqrt() Vec4f { return Vec4f{asm.SqrtPS(v.xmm)} }

// Abs clears the sign bit of every lane.
func (v Vec4f) Abs() Vec4f {
	return Vec4f{asm.AndPS(v.xmm, asm.Splat(asm.AbsMask))}
}

// ChangeSign flips the sign bit of lane i when bi is set. With all four false it
// returns v without touching it.
func (v Vec4f) ChangeSign(b0, b1, b2, b3 bool) Vec4f {
	if !(b0 || b1 || b2 || b3) {
		return v
	}
	var m [LEN]uint32
	for i, b := range [LEN]bool{b0, b1, b2, b3} {
		if b {
			m[i] = asm.SignBit
		}
	}
	return Vec4f{asm.XorPS(v.xmm, asm.FromBits(m))}
}

// SignCombine returns a with lane i negated when lane i of b has its sign bit
// set, including b = -0. It is a XOR (b AND -0.0).
func SignCombine(a, b Vec4f) Vec4f {
	signs := asm.AndPS(b.xmm, asm.Splat(asm.SignBit))
	return Vec4f{asm.XorPS(a.xmm, signs)}
}

// Min returns the lanewise minimum with MINPS semantics: when either lane is NaN,
// or both are zero, the lane of b is returned.
func Min(a, b Vec4f) Vec4f { return Vec4f{asm.MinPS(a.xmm, b.xmm)} }

// Max returns the lanewise maximum with the same operand rule as Min.
func Max(a, b Vec4f) Vec4f { return Vec4f{asm.MaxPS(a.xmm, b.xmm)} }

// ApproxRecipr approximates 1/v with a relative error below 2^-11.
func (v Vec4f) ApproxRecipr() Vec4f { return Vec4f{asm.RcpPS(v.xmm)} }

// ApproxRsqrt approximates 1/sqrt(v) with a relative error below 2^-11.
func (v Vec4f) ApproxRsqrt() Vec4f { return Vec4f{asm.RsqrtPS(v.xmm)} }

// HorizontalAdd returns the sum of the four lanes. The summation order depends
// on the dispatch level, so results for inexact sums may differ in the last bit
// between levels.
func (v Vec4f) HorizontalAdd() float32 {
	if sse3() {
		return horizontalAddSSE3(v)
	}
	return horizontalAddSSE2(v)
}

// (v0+v1) + (v2+v3)
func horizontalAddSSE3(v Vec4f) float32 { return asm.HSumHADD(v.xmm) }

// (v0+v2) + (v1+v3)
func horizontalAddSSE2(v Vec4f) float32 { return asm.HSumShuffle(v.xmm) }

// Round rounds every lane to the nearest integer, ties to even. Without SSE4.1
// it goes through int32, so NaN and lanes of magnitude 2^31 or more become
// -2147483648.
func (v Vec4f) Round() Vec4f {
	if sse41() {
		return roundSSE41(v)
	}
	return roundSSE2(v)
}

func roundSSE41(v Vec4f) Vec4f { return Vec4f{asm.RoundNearestPS(v.xmm)} }
func roundSSE2(v Vec4f) Vec4f  { return Vec4f{asm.CvtRoundPS(v.xmm)} }

// Truncate rounds every lane toward zero. Without SSE4.1 it goes through int32,
// with the same out-of-range result as Round.
func (v Vec4f) Truncate() Vec4f {
	if sse41() {
		return truncateSSE41(v)
	}
	return truncateSSE2(v)
}

func truncateSSE41(v Vec4f) Vec4f { return Vec4f{asm.RoundTruncPS(v.xmm)} }
func truncateSSE2(v Vec4f) Vec4f  { return Vec4f{asm.CvtTruncPS(v.xmm)} }

// Pow raises every lane to the integer power n by repeated squaring. Pow(0) is
// all ones and a negative n gives 1 / v.Pow(-n). math.MinInt32 cannot be
// negated and yields the quiet NaN PowNaN in every lane.
func (v Vec4f) Pow(n int32) Vec4f {
	if n < 0 {
		if n == math.MinInt32 {
			return splat(PowNaN)
		}
		return Broadcast(1).Div(v.Pow(-n))
	}
	result := Broadcast(1)
	power := v
	for {
		if n&1 != 0 {
			result.MulAssign(power)
		}
		n >>= 1
		if n == 0 {
			return result
		}
		power.MulAssign(power)
	}
}
