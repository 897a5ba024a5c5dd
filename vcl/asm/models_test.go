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

//go:build 386 || amd64

package asm

import (
	"math"
	"testing"
)

func f32(b uint32) float32 { return math.Float32frombits(b) }

func bitsEqual(t *testing.T, name string, got, want M128) {
	t.Helper()
	gb, wb := got.Bits(), want.Bits()
	for i := range gb {
		if gb[i] != wb[i] {
			t.Errorf("%s lane %d: got %#08x (%v), want %#08x (%v)", name, i, gb[i], got[i], wb[i], want[i])
		}
	}
}

func TestMinMaxOperandRule(t *testing.T) {
	nan := f32(0x7FC00001)
	negZero := f32(SignBit)
	a := M128{nan, 1, 0, negZero}
	b := M128{2, nan, negZero, 0}

	bitsEqual(t, "min", minPS(a, b), M128{2, nan, negZero, 0})
	bitsEqual(t, "max", maxPS(a, b), M128{2, nan, negZero, 0})
	bitsEqual(t, "min ordered", minPS(M128{1, -3, 5, 7}, M128{2, -4, 5, 6}), M128{1, -4, 5, 6})
	bitsEqual(t, "max ordered", maxPS(M128{1, -3, 5, 7}, M128{2, -4, 5, 6}), M128{2, -3, 5, 7})
}

func TestArithNaNOperandRule(t *testing.T) {
	first := f32(0x7F800001)  // signaling
	second := f32(0x7FC00002) // quiet
	got := addPS(M128{first, 1, first, 2}, M128{second, second, 3, 4})
	want := M128{f32(0x7FC00001), second, f32(0x7FC00001), 6}
	bitsEqual(t, "add", got, want)

	inf := float32(math.Inf(1))
	got = subPS(M128{inf, 0, 1, 8}, M128{inf, 0, 0, 2})
	if b := got.Bits()[0]; b != DefaultNaN {
		t.Errorf("inf-inf: got %#08x, want %#08x", b, DefaultNaN)
	}
	if got[3] != 6 {
		t.Errorf("8-2: got %v, want 6", got[3])
	}
	got = divPS(M128{1, -1, 0, 9}, M128{0, 0, 0, 3})
	if !math.IsInf(float64(got[0]), 1) || !math.IsInf(float64(got[1]), -1) {
		t.Errorf("x/0: got %v", got)
	}
	if b := got.Bits()[2]; b != DefaultNaN {
		t.Errorf("0/0: got %#08x, want %#08x", b, DefaultNaN)
	}
	if got[3] != 3 {
		t.Errorf("9/3: got %v, want 3", got[3])
	}
}

func TestBitwiseModels(t *testing.T) {
	bitsEqual(t, "and", andPS(M128{2, 4, 12, -1}, M128{3, 6, 8, 3}), M128{2, 4, 8, 0})
	bitsEqual(t, "or", orPS(M128{2, 4, 8, 3}, M128{3, 2, 4, 2}), M128{3, 4, 16, 3})
	bitsEqual(t, "xor", xorPS(M128{2, 5, 7, -2}, M128{2, 5, 7, -2}), M128{})
	bitsEqual(t, "andnot", andNotPS(Splat(SignBit), M128{-1, 2, -3, 4}), M128{1, 2, 3, 4})
}

func TestSqrtModel(t *testing.T) {
	negZero := f32(SignBit)
	got := sqrtPS(M128{4, -1, 0, negZero})
	want := M128{2, f32(DefaultNaN), 0, negZero}
	bitsEqual(t, "sqrt", got, want)
}

func TestApproxModels(t *testing.T) {
	const bound = 1.0 / 2048
	for _, x := range []float32{1, 3, -7, 0.1, 1e-20, 12345.678, 1e20} {
		r := rcpPS(M128{x, x, x, x})[0]
		want := 1 / float64(x)
		if rel := math.Abs((float64(r) - want) / want); rel > bound {
			t.Errorf("rcp(%v) = %v, relative error %g", x, r, rel)
		}
		if x < 0 {
			continue
		}
		r = rsqrtPS(M128{x, x, x, x})[0]
		want = 1 / math.Sqrt(float64(x))
		if rel := math.Abs((float64(r) - want) / want); rel > bound {
			t.Errorf("rsqrt(%v) = %v, relative error %g", x, r, rel)
		}
	}

	special := rcpPS(M128{0, f32(SignBit), float32(math.Inf(1)), float32(math.Inf(-1))})
	if !math.IsInf(float64(special[0]), 1) || !math.IsInf(float64(special[1]), -1) {
		t.Errorf("rcp(±0) = %v", special)
	}
	if special.Bits()[2] != 0 || special.Bits()[3] != SignBit {
		t.Errorf("rcp(±inf) = %v", special)
	}

	special = rsqrtPS(M128{0, -4, float32(math.Inf(1)), f32(0x7FC00000)})
	if !math.IsInf(float64(special[0]), 1) {
		t.Errorf("rsqrt(0) = %v, want +Inf", special[0])
	}
	if special.Bits()[1] != DefaultNaN {
		t.Errorf("rsqrt(-4) = %#08x, want %#08x", special.Bits()[1], DefaultNaN)
	}
	if special[2] != 0 {
		t.Errorf("rsqrt(+inf) = %v, want 0", special[2])
	}
	if !math.IsNaN(float64(special[3])) {
		t.Errorf("rsqrt(NaN) = %v, want NaN", special[3])
	}
}

func TestCompareModels(t *testing.T) {
	nan := f32(0x7FC00000)
	if got := cmpEqMask(M128{1, nan, 0, 2}, M128{1, nan, f32(SignBit), 3}); got != 0b0101 {
		t.Errorf("cmpEqMask: got %04b, want 0101", got)
	}
	if got := moveMask(M128{-1, 1, f32(SignBit), 0}); got != 0b0101 {
		t.Errorf("moveMask: got %04b, want 0101", got)
	}
}

func TestSelectModels(t *testing.T) {
	a := M128{1, 2, 3, 4}
	b := M128{5, 6, 7, 8}

	t.Run("well formed", func(t *testing.T) {
		mask := FromBits([4]uint32{AllOnes, 0, AllOnes, 0})
		want := M128{1, 6, 3, 8}
		bitsEqual(t, "select", selectPS(mask, a, b), want)
		bitsEqual(t, "blend", blendVPS(mask, a, b), want)
	})

	t.Run("sign bit only", func(t *testing.T) {
		mask := FromBits([4]uint32{SignBit, 0, 0, AbsMask})
		bitsEqual(t, "blend", blendVPS(mask, a, b), M128{1, 6, 7, 8})
		got := selectPS(mask, a, b)
		if got.Bits()[0] != math.Float32bits(a[0])&SignBit|math.Float32bits(b[0])&AbsMask {
			t.Errorf("select lane 0: got %#08x", got.Bits()[0])
		}
	})
}

func TestInsertModel(t *testing.T) {
	for i := range 4 {
		got := insertPS(M128{1, 2, 3, 4}, i, -9)
		for j := range got {
			want := float32(j + 1)
			if j == i {
				want = -9
			}
			if got[j] != want {
				t.Errorf("insert %d lane %d: got %v, want %v", i, j, got[j], want)
			}
		}
	}
}

func TestConvertModels(t *testing.T) {
	indefinite := float32(IntIndefinite)
	nan := f32(0x7FC00000)

	t.Run("round half even", func(t *testing.T) {
		bitsEqual(t, "cvt", cvtRoundPS(M128{0.5, 1.5, 2.5, -1.5}), M128{0, 2, 2, -2})
		bitsEqual(t, "cvt", cvtRoundPS(M128{1, 1.4, 1.5, 1.6}), M128{1, 1, 2, 2})
	})

	t.Run("out of range", func(t *testing.T) {
		bitsEqual(t, "cvt", cvtRoundPS(M128{nan, 3e9, -3e9, -2147483648}),
			M128{indefinite, indefinite, indefinite, -2147483648})
		bitsEqual(t, "cvtt", cvtTruncPS(M128{float32(math.Inf(1)), 2147483648, 2147483520, nan}),
			M128{indefinite, indefinite, 2147483520, indefinite})
	})

	t.Run("truncate", func(t *testing.T) {
		bitsEqual(t, "cvtt", cvtTruncPS(M128{1.9, -1.9, 0.2, 7}), M128{1, -1, 0, 7})
	})
}

func TestRoundModels(t *testing.T) {
	negZero := f32(SignBit)
	bitsEqual(t, "nearest", roundNearestPS(M128{1, 1.4, 1.5, 1.6}), M128{1, 1, 2, 2})
	bitsEqual(t, "nearest", roundNearestPS(M128{-2.5, -0.4, 3e9, 0.5}), M128{-2, negZero, 3e9, 0})
	bitsEqual(t, "trunc", roundTruncPS(M128{-1.9, 1.9, -0.2, 3e9}), M128{-1, 1, negZero, 3e9})
	bitsEqual(t, "nan", roundNearestPS(Splat(0x7F800001)), Splat(0x7FC00001))
}

func TestHorizontalSumModels(t *testing.T) {
	x := M128{2, -1, 2, 8}
	if got := hsumHADD(x); got != 11 {
		t.Errorf("hsumHADD: got %v, want 11", got)
	}
	if got := hsumShuffle(x); got != 11 {
		t.Errorf("hsumShuffle: got %v, want 11", got)
	}
}
