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

// Alignment is the address multiple required by the aligned loads and stores.
const Alignment = 16

func addrOf(buf []float32) uintptr {
	return uintptr(unsafe.Pointer(&buf[0]))
}

func checkFull(op string, buf []float32) {
	if len(buf) < LEN {
		panicShort(op, len(buf))
	}
}

func checkAligned(op string, buf []float32) {
	checkFull(op, buf)
	if a := addrOf(buf); a%Alignment != 0 {
		panicMisaligned(op, a)
	}
}

// IsAligned reports whether buf is non-empty and its first element sits on a
// 16-byte boundary.
func IsAligned(buf []float32) bool {
	return len(buf) > 0 && addrOf(buf)%Alignment == 0
}

// AlignedBuffer returns a zeroed slice of n float32s whose first element is
// 16-byte aligned, suitable for the aligned loads and stores.
func AlignedBuffer(n int) []float32 {
	buf := make([]float32, n+LEN-1)
	off := 0
	if n > 0 {
		off = int((Alignment - addrOf(buf)%Alignment) % Alignment / 4)
	}
	return buf[off : off+n : off+n]
}

// StoreFence orders the non-temporal writes of StoreAlignedNoCache before any
// later store. Call it once after a run of streaming stores and before another
// goroutine is told the data is ready.
func StoreFence() {
	asm.SFence()
}

// Store writes the four lanes to buf[0:4]. It panics with ErrShortBuffer when
// len(buf) < 4.
func (v Vec4f) Store(buf []float32) {
	checkFull("Store", buf)
	asm.StoreU(&buf[0], v.xmm)
}

// StoreAligned is Store for a 16-byte aligned buf. It also panics with
// ErrMisaligned.
func (v Vec4f) StoreAligned(buf []float32) {
	checkAligned("StoreAligned", buf)
	asm.StoreA(&buf[0], v.xmm)
}

// StoreAlignedNoCache is StoreAligned with a non-temporal store that bypasses the
// cache hierarchy. The write becomes visible to other observers only after
// StoreFence or another serializing instruction.
func (v Vec4f) StoreAlignedNoCache(buf []float32) {
	checkAligned("StoreAlignedNoCache", buf)
	asm.StoreNT(&buf[0], v.xmm)
}

// StorePartial writes the first min(4, len(buf)) lanes and leaves the rest of
// buf untouched.
func (v Vec4f) StorePartial(buf []float32) {
	if len(buf) >= LEN {
		asm.StoreU(&buf[0], v.xmm)
		return
	}
	copy(buf, v.xmm[:len(buf)])
}

// Load fills the four lanes from buf[0:4]. It panics with ErrShortBuffer when
// len(buf) < 4.
func (v *Vec4f) Load(buf []float32) {
	checkFull("Load", buf)
	v.xmm = asm.LoadU(&buf[0])
}

// LoadAligned is Load for a 16-byte aligned buf. It also panics with
// ErrMisaligned.
func (v *Vec4f) LoadAligned(buf []float32) {
	checkAligned("LoadAligned", buf)
	v.xmm = asm.LoadA(&buf[0])
}

// LoadPartial loads min(4, len(buf)) lanes starting at lane 0 and sets the
// remaining lanes to +0. Buffers longer than four load exactly four lanes.
func (v *Vec4f) LoadPartial(buf []float32) {
	switch len(buf) {
	case 0:
		v.xmm = asm.M128{}
	case 1:
		v.xmm = asm.LoadSS(&buf[0])
	case 2:
		v.xmm = asm.M128{buf[0], buf[1]}
	case 3:
		v.xmm = asm.M128{buf[0], buf[1], buf[2]}
	default:
		v.xmm = asm.LoadU(&buf[0])
	}
}

// cutoffMasks is a sliding window: the four lanes starting at index 4-n keep
// the first n lanes.
var cutoffMasks = [2 * LEN]uint32{
	asm.AllOnes, asm.AllOnes, asm.AllOnes, asm.AllOnes,
	0, 0, 0, 0,
}

// Cutoff keeps lanes 0..n-1 and sets lanes n..3 to +0. For n >= 4 it returns v
// unchanged. It panics with ErrIndexOutOfRange for negative n.
func (v Vec4f) Cutoff(n int) Vec4f {
	if n >= LEN {
		return v
	}
	if n < 0 {
		panicIndex("Cutoff", n)
	}
	mask := asm.LoadU((*float32)(unsafe.Pointer(&cutoffMasks[LEN-n])))
	return Vec4f{asm.AndPS(v.xmm, mask)}
}
