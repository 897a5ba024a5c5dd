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

// Package vcl provides Vec4f, four float32 lanes in one 128-bit SSE register,
// with an elementwise algebra where every operation is one or a handful of SSE
// instructions.
//
// # Feature levels
//
// SSE2 is required. SSE3 and SSE4.1 select faster lowerings for horizontal sums,
// lane selection, insertion and rounding:
//
//	Operation        SSE2                          SSE3 / SSE4.1
//	Select           ANDPS, ANDNPS, ORPS           BLENDVPS (4.1)
//	Insert           mask + select                 INSERTPS (4.1)
//	HorizontalAdd    MOVHLPS, ADDPS, SHUFPS, ADDSS HADDPS x2 (3)
//	Round            CVTPS2DQ, CVTDQ2PS            ROUNDPS $8 (4.1)
//	Truncate         CVTTPS2DQ, CVTDQ2PS           ROUNDPS $11 (4.1)
//
// Building with GOAMD64=v2 fixes the SSE3 and SSE4.1 branches at compile time.
// Otherwise they are chosen once at startup from the CPU, optionally capped with
// VCL_MAX_LEVEL=sse2|sse3|sse4.1. Has reports the outcome.
//
// # Memory
//
// Go cannot place a variable on a 16-byte boundary, so Vec4f itself moves through
// unaligned loads. The aligned variants (StoreAligned, LoadAligned,
// StoreAlignedNoCache) check the buffer address and panic with ErrMisaligned
// instead of faulting; AlignedBuffer returns buffers that satisfy them.
//
// # Errors
//
// Short buffers, misaligned buffers and out-of-range lane indices are programming
// errors and panic with an error wrapping ErrShortBuffer, ErrMisaligned or
// ErrIndexOutOfRange.
//
// Building this package for a GOARCH other than 386 or amd64 fails.
package vcl
