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

//go:build !noasm && amd64

package asm

// Memory.

// LoadU is MOVUPS from p.
//
//go:noescape
func LoadU(p *float32) M128

// LoadA is MOVAPS from p. p must be 16-byte aligned.
//
//go:noescape
func LoadA(p *float32) M128

// LoadSS is MOVSS from p: lane 0 is loaded and lanes 1..3 are zeroed.
//
//go:noescape
func LoadSS(p *float32) M128

// StoreU is MOVUPS to p.
//
//go:noescape
func StoreU(p *float32, x M128)

// StoreA is MOVAPS to p. p must be 16-byte aligned.
//
//go:noescape
func StoreA(p *float32, x M128)

// StoreNT is MOVNTPS to p, a non-temporal store. p must be 16-byte aligned.
// The write is weakly ordered until a later SFence.
//
//go:noescape
func StoreNT(p *float32, x M128)

// SFence orders all earlier non-temporal stores before later stores.
func SFence()

// Arithmetic and bitwise.

func AddPS(a, b M128) M128
func SubPS(a, b M128) M128
func MulPS(a, b M128) M128
func DivPS(a, b M128) M128
func AndPS(a, b M128) M128

// AndNotPS is ANDNPS: (NOT a) AND b.
func AndNotPS(a, b M128) M128
func OrPS(a, b M128) M128
func XorPS(a, b M128) M128

// MinPS is MINPS a, b. The second operand is returned when either lane is NaN
// or both are zero.
func MinPS(a, b M128) M128

// MaxPS is MAXPS a, b, with the same operand rule as MinPS.
func MaxPS(a, b M128) M128

func SqrtPS(x M128) M128

// RcpPS is RCPPS, an approximate reciprocal.
func RcpPS(x M128) M128

// RsqrtPS is RSQRTPS, an approximate reciprocal square root.
func RsqrtPS(x M128) M128

// Compare and select.

// CmpEqMask is CMPPS with the EQ predicate followed by MOVMSKPS. Bit i of the
// result is set when lane i of a equals lane i of b.
func CmpEqMask(a, b M128) int

// MoveMask is MOVMSKPS: bit i is the sign bit of lane i.
func MoveMask(x M128) int

// SelectPS is (mask AND a) OR ((NOT mask) AND b), bit by bit.
func SelectPS(mask, a, b M128) M128

// BlendVPS takes lane i from a when the sign bit of mask lane i is set, else
// from b. SSE4.1.
func BlendVPS(mask, a, b M128) M128

// InsertPS replaces lane i&3 of x with s. SSE4.1.
func InsertPS(x M128, i int, s float32) M128

// Conversion and rounding.

// CvtRoundPS is CVTPS2DQ followed by CVTDQ2PS. NaN and lanes outside the int32
// range become -2^31.
func CvtRoundPS(x M128) M128

// CvtTruncPS is CVTTPS2DQ followed by CVTDQ2PS.
func CvtTruncPS(x M128) M128

// RoundNearestPS is ROUNDPS with immediate 8: round half to even, inexact
// suppressed. SSE4.1.
func RoundNearestPS(x M128) M128

// RoundTruncPS is ROUNDPS with immediate 11: round toward zero, inexact
// suppressed. SSE4.1.
func RoundTruncPS(x M128) M128

// Horizontal reductions.

// HSumHADD reduces x to the sum of its lanes with two HADDPS. SSE3.
func HSumHADD(x M128) float32

// HSumShuffle reduces x with MOVHLPS, ADDPS, SHUFPS and ADDSS.
func HSumShuffle(x M128) float32
