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

package vcl

import "golang.org/x/sys/cpu"

const cpuLacksSSE2 = "vcl: this CPU does not support SSE2"

func init() {
	if !cpu.X86.HasSSE2 {
		panic(cpuLacksSSE2)
	}
	detectCPUFeatures()
	if limit, ok := MaxLevelEnv(); ok {
		capLevel(limit)
	}
}

func detectCPUFeatures() {
	hasSSE3 = cpu.X86.HasSSE3
	hasSSE41 = hasSSE3 && cpu.X86.HasSSE41

	switch {
	case hasSSE41:
		currentLevel = DispatchSSE41
	case hasSSE3:
		currentLevel = DispatchSSE3
	default:
		currentLevel = DispatchSSE2
	}
}

// capLevel lowers the runtime façade to at most limit.
func capLevel(limit DispatchLevel) {
	if limit < DispatchSSE41 {
		hasSSE41 = false
	}
	if limit < DispatchSSE3 {
		hasSSE3 = false
	}
	if currentLevel > limit {
		currentLevel = limit
	}
}
