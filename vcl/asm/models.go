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

package asm

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Pure-Go models of the SSE instructions. They are the implementation on 386 and
// under noasm, and the oracle the amd64 assembly is tested against.

const (
	two31   = 2147483648.0
	minNorm = 0x1p-126
	maxRcp  = 0x1p126
)

func quiet(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) | quietBit)
}

func defaultNaN() float32 {
	return math.Float32frombits(DefaultNaN)
}

// add2 follows ADDPS: a NaN first source wins over a NaN second source, and both
// come back quieted.
func add2(a, b float32) float32 {
	switch {
	case math32.IsNaN(a):
		return quiet(a)
	case math32.IsNaN(b):
		return quiet(b)
	}
	return a + b
}

func binaryOpPS(a, b M128, op func(x, y float32) float32) M128 {
	var r M128
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return r
}

func unaryOpPS(x M128, op func(float32) float32) M128 {
	var r M128
	for i := range r {
		r[i] = op(x[i])
	}
	return r
}

func bitwiseOpPS(a, b M128, op func(x, y uint32) uint32) M128 {
	ab, bb := a.Bits(), b.Bits()
	var r [4]uint32
	for i := range r {
		r[i] = op(ab[i], bb[i])
	}
	return FromBits(r)
}

// arith wraps an IEEE operation with the SSE NaN operand rule.
func arith(op func(x, y float32) float32) func(x, y float32) float32 {
	return func(x, y float32) float32 {
		switch {
		case math32.IsNaN(x):
			return quiet(x)
		case math32.IsNaN(y):
			return quiet(y)
		}
		return op(x, y)
	}
}

var (
	addOp = arith(func(x, y float32) float32 { return x + y })
	subOp = arith(func(x, y float32) float32 { return x - y })
	mulOp = arith(func(x, y float32) float32 { return x * y })
	divOp = arith(func(x, y float32) float32 { return x / y })
)

func addPS(a, b M128) M128 { return binaryOpPS(a, b, addOp) }
func subPS(a, b M128) M128 { return binaryOpPS(a, b, subOp) }
func mulPS(a, b M128) M128 { return binaryOpPS(a, b, mulOp) }
func divPS(a, b M128) M128 { return binaryOpPS(a, b, divOp) }

func andPS(a, b M128) M128 {
	return bitwiseOpPS(a, b, func(x, y uint32) uint32 { return x & y })
}

func andNotPS(a, b M128) M128 {
	return bitwiseOpPS(a, b, func(x, y uint32) uint32 { return ^x & y })
}

func orPS(a, b M128) M128 {
	return bitwiseOpPS(a, b, func(x, y uint32) uint32 { return x | y })
}

func xorPS(a, b M128) M128 {
	return bitwiseOpPS(a, b, func(x, y uint32) uint32 { return x ^ y })
}

// MINPS and MAXPS return the second operand whenever the comparison is false,
// which covers NaN in either lane and the +0/-0 pair.
func minPS(a, b M128) M128 {
	return binaryOpPS(a, b, func(x, y float32) float32 {
		if x < y {
			return x
		}
		return y
	})
}

func maxPS(a, b M128) M128 {
	return binaryOpPS(a, b, func(x, y float32) float32 {
		if x > y {
			return x
		}
		return y
	})
}

func sqrtPS(x M128) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		switch {
		case math32.IsNaN(f):
			return quiet(f)
		case f < 0:
			return defaultNaN()
		}
		return math32.Sqrt(f)
	})
}

// truncMantissa keeps the top 12 fraction bits, the precision RCPPS and RSQRTPS
// guarantee.
func truncMantissa(f float64) float32 {
	return math.Float32frombits(math.Float32bits(float32(f)) &^ 0x7FF)
}

func rcpPS(x M128) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		a := math32.Abs(f)
		switch {
		case math32.IsNaN(f):
			return quiet(f)
		case a < minNorm:
			return math32.Copysign(math32.Inf(1), f)
		case a > maxRcp:
			return math32.Copysign(0, f)
		}
		return truncMantissa(1 / float64(f))
	})
}

func rsqrtPS(x M128) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		switch {
		case math32.IsNaN(f):
			return quiet(f)
		case math32.Abs(f) < minNorm:
			return math32.Copysign(math32.Inf(1), f)
		case f < 0:
			return defaultNaN()
		case math32.IsInf(f, 1):
			return 0
		}
		return truncMantissa(1 / math.Sqrt(float64(f)))
	})
}

func cmpEqMask(a, b M128) int {
	m := 0
	for i := range a {
		if a[i] == b[i] {
			m |= 1 << i
		}
	}
	return m
}

func moveMask(x M128) int {
	m := 0
	for i, b := range x.Bits() {
		m |= int(b>>31) << i
	}
	return m
}

// selectPS is (mask AND a) OR (ANDNOT(mask, b)).
func selectPS(mask, a, b M128) M128 {
	return orPS(andPS(mask, a), andNotPS(mask, b))
}

func blendVPS(mask, a, b M128) M128 {
	mb := mask.Bits()
	r := b
	for i := range r {
		if mb[i]&SignBit != 0 {
			r[i] = a[i]
		}
	}
	return r
}

func insertPS(x M128, i int, s float32) M128 {
	x[i&3] = s
	return x
}

func cvtToInt32(f float32, round func(float64) float64) int32 {
	if math32.IsNaN(f) || f >= two31 || f < -two31 {
		return IntIndefinite
	}
	return int32(round(float64(f)))
}

// cvtRoundPS is CVTPS2DQ then CVTDQ2PS under the default MXCSR rounding mode.
func cvtRoundPS(x M128) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		return float32(cvtToInt32(f, math.RoundToEven))
	})
}

// cvtTruncPS is CVTTPS2DQ then CVTDQ2PS.
func cvtTruncPS(x M128) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		return float32(cvtToInt32(f, math.Trunc))
	})
}

func roundWith(x M128, round func(float64) float64) M128 {
	return unaryOpPS(x, func(f float32) float32 {
		if math32.IsNaN(f) {
			return quiet(f)
		}
		return float32(round(float64(f)))
	})
}

func roundNearestPS(x M128) M128 { return roundWith(x, math.RoundToEven) }
func roundTruncPS(x M128) M128   { return roundWith(x, math.Trunc) }

// hsumHADD is HADDPS x,x twice. HADDPS adds the upper lane of each pair to the
// lower one.
func hsumHADD(x M128) float32 {
	lo, hi := add2(x[1], x[0]), add2(x[3], x[2])
	return add2(hi, lo)
}

// hsumShuffle is MOVHLPS, ADDPS, SHUFPS, ADDSS.
func hsumShuffle(x M128) float32 {
	t0, t1 := add2(x[2], x[0]), add2(x[3], x[1])
	return add2(t0, t1)
}

func loadU(p *float32) M128 {
	return *(*M128)(unsafe.Pointer(p))
}

func loadSS(p *float32) M128 {
	return M128{*p}
}

func storeU(p *float32, x M128) {
	*(*M128)(unsafe.Pointer(p)) = x
}
