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

// Package kernels implements float32 slice routines on top of vcl.Vec4f: full
// vectors through Load/Store, remainders through LoadPartial/StorePartial.
//
// Routines that read two inputs, or write an output, process the shortest of the
// slices involved.
package kernels

import "github.com/ajroetker/go-vcl/vcl"

// processWithTail calls full(offset) for every complete group of four elements
// and tail(offset, count) once for the 1 to 3 elements left over.
func processWithTail(size int, full func(offset int), tail func(offset, count int)) {
	i := 0
	for ; i+vcl.LEN <= size; i += vcl.LEN {
		full(i)
	}
	if i < size {
		tail(i, size-i)
	}
}

// Sum returns the sum of the elements of x. Returns 0 for an empty slice.
func Sum(x []float32) float32 {
	var acc, v vcl.Vec4f
	processWithTail(len(x),
		func(offset int) {
			v.Load(x[offset:])
			acc.AddAssign(v)
		},
		func(offset, _ int) {
			v.LoadPartial(x[offset:])
			acc.AddAssign(v)
		},
	)
	return acc.HorizontalAdd()
}

// Dot returns the inner product of a and b.
func Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	var acc, va, vb vcl.Vec4f
	processWithTail(n,
		func(offset int) {
			va.Load(a[offset:])
			vb.Load(b[offset:])
			acc.AddAssign(va.Mul(vb))
		},
		func(offset, count int) {
			va.LoadPartial(a[offset : offset+count])
			vb.LoadPartial(b[offset : offset+count])
			acc.AddAssign(va.Mul(vb))
		},
	)
	return acc.HorizontalAdd()
}

// binary applies op to matching groups of a and b and writes into dst.
func binary(dst, a, b []float32, op func(x, y vcl.Vec4f) vcl.Vec4f) {
	n := min(len(dst), len(a), len(b))
	var va, vb vcl.Vec4f
	processWithTail(n,
		func(offset int) {
			va.Load(a[offset:])
			vb.Load(b[offset:])
			op(va, vb).Store(dst[offset:])
		},
		func(offset, count int) {
			va.LoadPartial(a[offset : offset+count])
			vb.LoadPartial(b[offset : offset+count])
			op(va, vb).StorePartial(dst[offset : offset+count])
		},
	)
}

// unary applies op to groups of src and writes into dst.
func unary(dst, src []float32, op func(x vcl.Vec4f) vcl.Vec4f) {
	n := min(len(dst), len(src))
	var v vcl.Vec4f
	processWithTail(n,
		func(offset int) {
			v.Load(src[offset:])
			op(v).Store(dst[offset:])
		},
		func(offset, count int) {
			v.LoadPartial(src[offset : offset+count])
			op(v).StorePartial(dst[offset : offset+count])
		},
	)
}

// Add writes a[i] + b[i] to dst[i].
func Add(dst, a, b []float32) {
	binary(dst, a, b, vcl.Vec4f.Add)
}

// Mul writes a[i] * b[i] to dst[i].
func Mul(dst, a, b []float32) {
	binary(dst, a, b, vcl.Vec4f.Mul)
}

// Scale writes src[i] * s to dst[i].
func Scale(dst, src []float32, s float32) {
	vs := vcl.Broadcast(s)
	unary(dst, src, func(x vcl.Vec4f) vcl.Vec4f { return x.Mul(vs) })
}

// Clamp writes src[i] limited to [lo, hi] into dst[i]. NaN elements become hi,
// following the MINPS/MAXPS operand rule.
func Clamp(dst, src []float32, lo, hi float32) {
	vlo, vhi := vcl.Broadcast(lo), vcl.Broadcast(hi)
	unary(dst, src, func(x vcl.Vec4f) vcl.Vec4f {
		return vcl.Max(vcl.Min(x, vhi), vlo)
	})
}

// Round writes src[i] rounded half to even into dst[i].
func Round(dst, src []float32) {
	unary(dst, src, vcl.Vec4f.Round)
}

// StreamCopy copies src into dst with non-temporal stores wherever dst is 16-byte
// aligned, for buffers too large to be worth caching. It returns the number of
// elements copied. The copy is fenced before StreamCopy returns.
func StreamCopy(dst, src []float32) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	streaming := vcl.IsAligned(dst)
	var v vcl.Vec4f
	processWithTail(n,
		func(offset int) {
			v.Load(src[offset:])
			if streaming {
				v.StoreAlignedNoCache(dst[offset:])
			} else {
				v.Store(dst[offset:])
			}
		},
		func(offset, count int) {
			v.LoadPartial(src[offset : offset+count])
			v.StorePartial(dst[offset : offset+count])
		},
	)
	if streaming {
		vcl.StoreFence()
	}
	return n
}
