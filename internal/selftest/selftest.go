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

// Package selftest runs a fixed list of end-to-end checks of vcl.Vec4f on the
// current machine and dispatch level.
package selftest

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-vcl/vcl"
)

// Check is one named scenario. Run returns nil when the scenario holds.
type Check struct {
	Name string
	Run  func() error
}

// Result is the outcome of one Check.
type Result struct {
	Name   string `yaml:"name"`
	Passed bool   `yaml:"passed"`
	Error  string `yaml:"error,omitempty"`
}

func expect(step string, got vcl.Vec4f, want [vcl.LEN]float32) error {
	gb := got.Bits()
	for i, w := range want {
		if gb[i] != math.Float32bits(w) {
			return fmt.Errorf("%s: got %v, want %v", step, got, want)
		}
	}
	return nil
}

// Checks returns the scenarios in a fixed order.
func Checks() []Check {
	return []Check{
		{"arithmetic chain", arithmeticChain},
		{"horizontal add", horizontalAdd},
		{"bitwise", bitwise},
		{"sign combine", signCombine},
		{"partial load and store", partial},
		{"rounding and power", roundingAndPower},
	}
}

// Run executes every check. A check that panics fails with the panic value.
func Run() []Result {
	checks := Checks()
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, runOne(c))
	}
	return results
}

func runOne(c Check) (res Result) {
	res.Name = c.Name
	defer func() {
		if r := recover(); r != nil {
			res.Passed = false
			res.Error = fmt.Sprintf("panic: %v", r)
		}
	}()
	if err := c.Run(); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Passed = true
	return res
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func arithmeticChain() error {
	var a vcl.Vec4f
	a.AddAssign(vcl.New(1, -1, 2, 3))
	if err := expect("+=", a, [4]float32{1, -1, 2, 3}); err != nil {
		return err
	}
	a.MulAssign(vcl.New(3, -2, 5, -1))
	if err := expect("*=", a, [4]float32{3, 2, 10, -3}); err != nil {
		return err
	}
	a.DivAssign(vcl.New(-1, 2, -2, -3))
	return expect("/=", a, [4]float32{-3, 1, -5, 1})
}

func horizontalAdd() error {
	if got := vcl.New(2, -1, 2, 8).HorizontalAdd(); got != 11 {
		return fmt.Errorf("got %v, want 11", got)
	}
	return nil
}

func bitwise() error {
	if err := expect("and", vcl.New(2, 4, 12, -1).And(vcl.New(3, 6, 8, 3)), [4]float32{2, 4, 8, 0}); err != nil {
		return err
	}
	if err := expect("or", vcl.New(2, 4, 8, 3).Or(vcl.New(3, 2, 4, 2)), [4]float32{3, 4, 16, 3}); err != nil {
		return err
	}
	return expect("xor", vcl.New(2, 5, 7, -2).Xor(vcl.New(2, 5, 7, -2)), [4]float32{})
}

func signCombine() error {
	negZero := math.Float32frombits(0x80000000)
	got := vcl.SignCombine(vcl.New(-2, -1, 0, 1), vcl.New(-10, 0, -20, 30))
	return expect("sign combine", got, [4]float32{2, -1, negZero, 1})
}

func partial() error {
	v := vcl.Broadcast(42)
	v.LoadPartial(nil)
	if err := expect("load 0", v, [4]float32{}); err != nil {
		return err
	}
	v.LoadPartial([]float32{-10})
	if err := expect("load 1", v, [4]float32{-10}); err != nil {
		return err
	}
	out := [4]float32{7, 7, 7, 7}
	v.StorePartial(out[:3])
	if want := [4]float32{-10, 0, 0, 7}; out != want {
		return fmt.Errorf("store 3: got %v, want %v", out, want)
	}
	return nil
}

func roundingAndPower() error {
	if err := expect("round", vcl.New(1, 1.4, 1.5, 1.6).Round(), [4]float32{1, 1, 2, 2}); err != nil {
		return err
	}
	v := vcl.New(-1, 2, 3, 1.5)
	if err := expect("pow 2", v.Pow(2), [4]float32{1, 4, 9, 2.25}); err != nil {
		return err
	}
	one, three, oneHalf := float32(1), float32(3), float32(1.5)
	return expect("pow -1", v.Pow(-1), [4]float32{-1, 0.5, one / three, one / oneHalf})
}
