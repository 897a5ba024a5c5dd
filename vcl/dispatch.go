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
	"fmt"
	"os"
	"strings"
)

//go:generate go tool stringer -type=Feature,DispatchLevel -linecomment

// Feature is an x86 instruction-set extension the capability oracle answers for.
type Feature int

const (
	SSE2  Feature = iota // sse2
	SSE3                 // sse3
	SSE41                // sse4.1
)

// DispatchLevel is the widest feature set the operations lower to.
type DispatchLevel int

const (
	// DispatchSSE2 uses only the x86-64 baseline.
	DispatchSSE2 DispatchLevel = iota // sse2

	// DispatchSSE3 adds HADDPS for horizontal sums.
	DispatchSSE3 // sse3

	// DispatchSSE41 adds BLENDVPS, INSERTPS and ROUNDPS.
	DispatchSSE41 // sse4.1
)

// Runtime answers, set by init() in dispatch_x86.go. When the build already
// fixes a feature (staticSSE3, staticSSE41) these are never consulted.
var (
	hasSSE3  bool
	hasSSE41 bool
)

// currentLevel is the level the runtime façade settled on.
var currentLevel DispatchLevel

// sse3 and sse41 are the branch conditions every multi-path operation tests.
// Under GOAMD64=v2 both fold to true at compile time.
func sse3() bool  { return staticSSE3 || hasSSE3 }
func sse41() bool { return staticSSE41 || hasSSE41 }

// Has reports whether operations may use the given feature. SSE2 is a
// precondition of the package and always reports true.
func Has(f Feature) bool {
	switch f {
	case SSE2:
		return true
	case SSE3:
		return sse3()
	case SSE41:
		return sse41()
	default:
		return false
	}
}

// CurrentLevel returns the dispatch level in effect.
func CurrentLevel() DispatchLevel {
	switch {
	case sse41():
		return DispatchSSE41
	case sse3():
		return DispatchSSE3
	}
	return currentLevel
}

// CurrentName returns a human-readable name for the current dispatch level,
// for example "sse4.1".
func CurrentName() string {
	return CurrentLevel().String()
}

// Static reports whether the dispatch level was fixed at build time (GOAMD64=v2
// or higher) rather than detected when the program started.
func Static() bool {
	return staticSSE3 && staticSSE41
}

// ParseDispatchLevel parses the names printed by DispatchLevel.String. "sse41"
// is accepted as a spelling of "sse4.1".
func ParseDispatchLevel(s string) (DispatchLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sse2":
		return DispatchSSE2, nil
	case "sse3":
		return DispatchSSE3, nil
	case "sse4.1", "sse41":
		return DispatchSSE41, nil
	}
	return DispatchSSE2, fmt.Errorf("vcl: unknown dispatch level %q", s)
}

// MaxLevelEnv reads the VCL_MAX_LEVEL environment variable. When it names a
// level, the runtime façade never goes above it. A level fixed at build time is
// not affected. ok is false when the variable is unset or unparseable.
func MaxLevelEnv() (level DispatchLevel, ok bool) {
	val := os.Getenv("VCL_MAX_LEVEL")
	if val == "" {
		return 0, false
	}
	level, err := ParseDispatchLevel(val)
	if err != nil {
		return 0, false
	}
	return level, true
}
