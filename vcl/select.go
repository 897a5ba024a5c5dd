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

// Select returns, per lane, a where the lane of mask has its sign bit set and b
// otherwise.
//
// Masks are expected to hold 0x00000000 or 0xFFFFFFFF per lane, as comparisons
// produce. On other masks the SSE2 lowering mixes a and b bit by bit while the
// SSE4.1 lowering looks only at the sign bit.
func Select(mask, a, b Vec4f) Vec4f {
	if sse41() {
		return selectSSE41(mask, a, b)
	}
	return selectSSE2(mask, a, b)
}

func selectSSE41(mask, a, b Vec4f) Vec4f {
	return Vec4f{asm.BlendVPS(mask.xmm, a.xmm, b.xmm)}
}

func selectSSE2(mask, a, b Vec4f) Vec4f {
	return Vec4f{asm.SelectPS(mask.xmm, a.xmm, b.xmm)}
}
