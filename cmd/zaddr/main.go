// Copyright 2025 Blink Labs Software
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
	"os"

	"github.com/blinklabs-io/zaddr"
	"github.com/blinklabs-io/zaddr/cmd/common"
)

type subcommandFunc func(p *zaddr.Parser, input string, out *resultWriter) error

var subcommands = map[string]subcommandFunc{
	"normalize": runNormalize,
	"valid":     runValid,
	"classify":  runClassify,
	"decompose": runDecompose,
	"inspect":   runInspect,
}

func main() {
	f := common.NewGlobalFlags()
	f.Parse()
	os.Exit(run(f, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the subcommand named by the first positional arg against each input and
// returns the process exit code
func run(f *common.GlobalFlags, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	args := f.Flagset.Args()
	if len(args) == 0 {
		fmt.Fprintf(
			stderr,
			"You must specify a subcommand (normalize, valid, classify, decompose or inspect)\n",
		)
		return 1
	}
	subcommand, ok := subcommands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Unknown subcommand: %s\n", args[0])
		return 1
	}
	logger := f.Logger(stderr)
	inputs, err := common.Inputs(args[1:], stdin)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: failed to read input: %s\n", err)
		return 1
	}
	p := zaddr.NewParser(
		f.NetworkParams,
		zaddr.WithLogger(logger),
		zaddr.WithUnknownReceiverPolicy(f.UnknownReceiverPolicy()),
	)
	out := &resultWriter{
		format: f.Format,
		w:      stdout,
	}
	logger.Debug(
		"processing inputs",
		"subcommand", args[0],
		"network", f.NetworkParams.Name,
		"count", len(inputs),
	)
	ret := 0
	for _, input := range inputs {
		if err := subcommand(p, input, out); err != nil {
			fmt.Fprintf(stderr, "ERROR: %q: %s\n", input, err)
			ret = 1
		}
	}
	return ret
}
