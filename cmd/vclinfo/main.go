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

// Command vclinfo prints the CPU features vcl sees, the dispatch level its
// operations lower to, and can run the end-to-end self-test on this machine.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-vcl/internal/selftest"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:           "vclinfo",
		Short:         "Report CPU features and the vcl dispatch level",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(out, format, collectReport())
		},
	}
	root.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the Vec4f end-to-end scenarios at the current dispatch level",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := selftest.Run()
			if err := renderResults(out, format, results); err != nil {
				return err
			}
			if n := selftest.Failed(results); n > 0 {
				return fmt.Errorf("vclinfo: %d of %d checks failed", n, len(results))
			}
			return nil
		},
	}
	root.AddCommand(selftestCmd)

	return root
}

func checkFormat(format string) error {
	switch format {
	case "text", "yaml":
		return nil
	}
	return fmt.Errorf("vclinfo: unknown format %q (want text or yaml)", format)
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
