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
	"errors"
	"fmt"
)

// Contract violations. Load, store and lane operations panic with an error that
// wraps one of these, so a caller that recovers can still match it with
// errors.Is. FromSlice returns ErrInvalidLength instead of panicking.
var (
	// ErrShortBuffer means a full load or store was given fewer than LEN elements.
	ErrShortBuffer = errors.New("vcl: buffer shorter than 4 elements")

	// ErrMisaligned means an aligned load or store was given a buffer whose first
	// element is not on a 16-byte boundary.
	ErrMisaligned = errors.New("vcl: buffer not 16-byte aligned")

	// ErrIndexOutOfRange means a lane index was not in [0, LEN).
	ErrIndexOutOfRange = errors.New("vcl: lane index out of range")

	// ErrInvalidLength means FromSlice was given fewer than LEN elements.
	ErrInvalidLength = errors.New("vcl: slice length less than 4")
)

func panicShort(op string, n int) {
	panic(fmt.Errorf("%w: %s got %d elements", ErrShortBuffer, op, n))
}

func panicMisaligned(op string, addr uintptr) {
	panic(fmt.Errorf("%w: %s got address %#x", ErrMisaligned, op, addr))
}

func panicIndex(op string, i int) {
	panic(fmt.Errorf("%w: %s index %d", ErrIndexOutOfRange, op, i))
}
