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

package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-vcl/internal/selftest"
	"github.com/ajroetker/go-vcl/vcl"
)

// Report is everything vclinfo prints about the machine.
type Report struct {
	GOOS   string `yaml:"goos"`
	GOARCH string `yaml:"goarch"`
	NumCPU int    `yaml:"num_cpu"`

	Level    string          `yaml:"level"`
	Static   bool            `yaml:"static"`
	MaxLevel string          `yaml:"max_level,omitempty"`
	Features map[string]bool `yaml:"features"`

	CPU map[string]bool `yaml:"cpu"`

	Vek VekInfo `yaml:"vek32"`
}

// VekInfo is what vek32 reports about its own acceleration.
type VekInfo struct {
	Accelerated bool     `yaml:"accelerated"`
	CPUFeatures []string `yaml:"cpu_features"`
}

func collectReport() Report {
	r := Report{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		Level:  vcl.CurrentName(),
		Static: vcl.Static(),
		Features: map[string]bool{
			vcl.SSE2.String():  vcl.Has(vcl.SSE2),
			vcl.SSE3.String():  vcl.Has(vcl.SSE3),
			vcl.SSE41.String(): vcl.Has(vcl.SSE41),
		},
		CPU: map[string]bool{
			"sse2":   cpu.X86.HasSSE2,
			"sse3":   cpu.X86.HasSSE3,
			"ssse3":  cpu.X86.HasSSSE3,
			"sse4.1": cpu.X86.HasSSE41,
			"sse4.2": cpu.X86.HasSSE42,
			"avx":    cpu.X86.HasAVX,
			"avx2":   cpu.X86.HasAVX2,
			"fma":    cpu.X86.HasFMA,
		},
	}
	if limit, ok := vcl.MaxLevelEnv(); ok {
		r.MaxLevel = limit.String()
	}
	info := vek32.Info()
	r.Vek = VekInfo{Accelerated: info.Acceleration, CPUFeatures: info.CPUFeatures}
	return r
}

var featureOrder = []string{"sse2", "sse3", "ssse3", "sse4.1", "sse4.2", "avx", "avx2", "fma"}

func render(out io.Writer, format string, r Report) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "yaml" {
		return writeYAML(out, r)
	}

	fmt.Fprintf(out, "GOOS: %s\n", r.GOOS)
	fmt.Fprintf(out, "GOARCH: %s\n", r.GOARCH)
	fmt.Fprintf(out, "NumCPU: %d\n\n", r.NumCPU)

	fmt.Fprintf(out, "vcl dispatch level: %s\n", r.Level)
	fmt.Fprintf(out, "vcl static build:   %v\n", r.Static)
	if r.MaxLevel != "" {
		fmt.Fprintf(out, "VCL_MAX_LEVEL:      %s\n", r.MaxLevel)
	}
	for _, f := range []vcl.Feature{vcl.SSE2, vcl.SSE3, vcl.SSE41} {
		fmt.Fprintf(out, "  Has(%s): %v\n", f, r.Features[f.String()])
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== golang.org/x/sys/cpu.X86 ===")
	for _, name := range featureOrder {
		fmt.Fprintf(out, "  %-7s %v\n", name+":", r.CPU[name])
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "vek32 accelerated: %v %v\n", r.Vek.Accelerated, r.Vek.CPUFeatures)
	return nil
}

func renderResults(out io.Writer, format string, results []selftest.Result) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == "yaml" {
		return writeYAML(out, struct {
			Level   string            `yaml:"level"`
			Results []selftest.Result `yaml:"results"`
		}{vcl.CurrentName(), results})
	}

	fmt.Fprintf(out, "vcl self-test at %s\n", vcl.CurrentName())
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "  %s  %s", status, r.Name)
		if r.Error != "" {
			fmt.Fprintf(out, ": %s", r.Error)
		}
		fmt.Fprintln(out)
	}
	return nil
}
