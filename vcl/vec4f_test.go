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
	"testing"
)

func TestConstructors(t *testing.T) {
	t.Run("New lane order", func(t *testing.T) {
		for _, c := range [][LEN]float32{{1, 2, 3, 4}, {-1, 0, 1e30, -7.5}} {
			v := New(c[0], c[1], c[2], c[3])
			for i := range LEN {
				if got := *v.Get(i); got != c[i] {
					t.Errorf("lane %d: got %v, want %v", i, got, c[i])
				}
			}
		}
	})

	t.Run("Broadcast", func(t *testing.T) {
		expectLanes(t, Broadcast(2.5), [LEN]float32{2.5, 2.5, 2.5, 2.5})
	})

	t.Run("Zero", func(t *testing.T) {
		var v Vec4f
		expectLanes(t, v, [LEN]float32{})
		expectLanes(t, Zero(), [LEN]float32{})
	})

	t.Run("FromArray", func(t *testing.T) {
		expectLanes(t, FromArray([LEN]float32{4, 3, 2, 1}), [LEN]float32{4, 3, 2, 1})
	})

	t.Run("FromSlice", func(t *testing.T) {
		v, err := FromSlice([]float32{9, 8, 7, 6, 5})
		if err != nil {
			t.Fatalf("FromSlice: %v", err)
		}
		expectLanes(t, v, [LEN]float32{9, 8, 7, 6})

		_, err = FromSlice([]float32{1, 2, 3})
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FromSlice(3 elements) error = %v, want ErrInvalidLength", err)
		}
		if _, err = FromSlice(nil); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("FromSlice(nil) error = %v, want ErrInvalidLength", err)
		}
	})
}

func TestString(t *testing.T) {
	if got, want := New(1, -1, 2.5, 0).String(), "[1 -1 2.5 0]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBits(t *testing.T) {
	got := New(1, -2, 0, negZero()).Bits()
	want := [LEN]uint32{0x3F800000, 0xC0000000, 0, 0x80000000}
	if got != want {
		t.Errorf("Bits() = %#08x, want %#08x", got, want)
	}
}
