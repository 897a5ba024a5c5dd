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

//go:build noasm || !amd64

package asm

func LoadU(p *float32) M128     { return loadU(p) }
func LoadA(p *float32) M128     { return loadU(p) }
func LoadSS(p *float32) M128    { return loadSS(p) }
func StoreU(p *float32, x M128) { storeU(p, x) }
func StoreA(p *float32, x M128) { storeU(p, x) }

// StoreNT has no cache hint to give without assembly and degrades to a plain store.
func StoreNT(p *float32, x M128) { storeU(p, x) }

// SFence is a no-op: plain Go stores are already ordered for Go readers.
func SFence() {}

func AddPS(a, b M128) M128    { return addPS(a, b) }
func SubPS(a, b M128) M128    { return subPS(a, b) }
func MulPS(a, b M128) M128    { return mulPS(a, b) }
func DivPS(a, b M128) M128    { return divPS(a, b) }
func AndPS(a, b M128) M128    { return andPS(a, b) }
func AndNotPS(a, b M128) M128 { return andNotPS(a, b) }
func OrPS(a, b M128) M128     { return orPS(a, b) }
func XorPS(a, b M128) M128    { return xorPS(a, b) }
func MinPS(a, b M128) M128    { return minPS(a, b) }
func MaxPS(a, b M128) M128    { return maxPS(a, b) }
func SqrtPS(x M128) M128      { return sqrtPS(x) }
func RcpPS(x M128) M128       { return rcpPS(x) }
func RsqrtPS(x M128) M128     { return rsqrtPS(x) }

func CmpEqMask(a, b M128) int                { return cmpEqMask(a, b) }
func MoveMask(x M128) int                    { return moveMask(x) }
func SelectPS(mask, a, b M128) M128          { return selectPS(mask, a, b) }
func BlendVPS(mask, a, b M128) M128          { return blendVPS(mask, a, b) }
func InsertPS(x M128, i int, s float32) M128 { return insertPS(x, i, s) }

func CvtRoundPS(x M128) M128     { return cvtRoundPS(x) }
func CvtTruncPS(x M128) M128     { return cvtTruncPS(x) }
func RoundNearestPS(x M128) M128 { return roundNearestPS(x) }
func RoundTruncPS(x M128) M128   { return roundTruncPS(x) }

func HSumHADD(x M128) float32    { return hsumHADD(x) }
func HSumShuffle(x M128) float32 { return hsumShuffle(x) }
