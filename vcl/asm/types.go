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

// Package asm holds the instruction layer under package vcl: one Go function per
// SSE instruction or short fixed instruction sequence.
//
// On amd64 the functions are Go assembly. On 386, or when built with -tags noasm,
// they are the pure-Go models in models.go, which reproduce the instructions bit for
// bit (including NaN propagation and the integer-indefinite value of the
// conversions), with the exception of RcpPS and RsqrtPS whose hardware tables are
// not public; their models stay within a relative error of 2^-12.
//
// Functions marked SSE3 or SSE4.1 execute those instructions unconditionally on
// amd64. Callers check the CPU first.
package asm

import (
	"math"
	"unsafe"
)

// M128 is the memory image of an XMM register holding four float32 lanes.
// Lane 0 is the lowest address.
type M128 [4]float32

// Bits reinterprets the lanes as their IEEE-754 bit patterns.
func (x M128) Bits() [4]uint32 {
	return *(*[4]uint32)(unsafe.Pointer(&x))
}

// FromBits builds a register image from four raw lane bit patterns.
func FromBits(b [4]uint32) M128 {
	return *(*M128)(unsafe.Pointer(&b))
}

// Splat returns a register image with every lane holding the bit pattern b.
func Splat(b uint32) M128 {
	f := math.Float32frombits(b)
	return M128{f, f, f, f}
}

const (
	// SignBit is the IEEE-754 sign bit of a float32 lane.
	SignBit uint32 = 0x80000000

	// AbsMask clears the sign bit.
	AbsMask uint32 = 0x7FFFFFFF

	// AllOnes is a true lane in a comparison mask.
	AllOnes uint32 = 0xFFFFFFFF

	// IntIndefinite is what CVTPS2DQ and CVTTPS2DQ produce for NaN and
	// out-of-range lanes.
	IntIndefinite int32 = math.MinInt32

	// DefaultNaN is the QNaN the hardware generates for invalid operations.
	DefaultNaN uint32 = 0xFFC00000

	quietBit uint32 = 0x00400000
)
