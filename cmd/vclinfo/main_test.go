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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-vcl/vcl"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestTextReport(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "vcl dispatch level: "+vcl.CurrentName())
	assert.Contains(t, out, "Has(sse2): true")
	assert.Contains(t, out, "golang.org/x/sys/cpu.X86")
}

func TestYAMLReport(t *testing.T) {
	out, err := execute(t, "--format", "yaml")
	require.NoError(t, err)

	var r Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, vcl.CurrentName(), r.Level)
	assert.Equal(t, vcl.Static(), r.Static)
	assert.True(t, r.Features["sse2"])
	assert.Equal(t, vcl.Has(vcl.SSE41), r.Features["sse4.1"])
	assert.Contains(t, r.CPU, "avx2")
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "-f", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "json"`)
}

func TestSelftestCommand(t *testing.T) {
	out, err := execute(t, "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  arithmetic chain")
	assert.NotContains(t, out, "FAIL")

	out, err = execute(t, "selftest", "--format", "yaml")
	require.NoError(t, err)
	var doc struct {
		Level   string `yaml:"level"`
		Results []struct {
			Name   string `yaml:"name"`
			Passed bool   `yaml:"passed"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, vcl.CurrentName(), doc.Level)
	require.Len(t, doc.Results, 6)
	for _, r := range doc.Results {
		assert.Truef(t, r.Passed, "%s failed", r.Name)
	}
}
