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

package common

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blinklabs-io/zaddr/address"
	"github.com/blinklabs-io/zaddr/decompose"
)

const (
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	Network    string
	Format     string
	Diagnostic bool
	Debug      bool
	// Populated by Parse
	NetworkParams address.Network
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.Network,
		"network",
		address.NetworkMainnet.Name,
		"specifies network that addresses are parsed for (mainnet, testnet, regtest)",
	)
	f.Flagset.StringVar(
		&f.Format,
		"format",
		FormatJSON,
		"output format for decompose and inspect (json or cbor)",
	)
	f.Flagset.BoolVar(
		&f.Diagnostic,
		"diagnostic",
		false,
		"report unified receivers with unknown typecodes instead of dropping them",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

// Parse parses the command line and exits on error
func (f *GlobalFlags) Parse() {
	if err := f.ParseArgs(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
}

// ParseArgs parses the provided args and validates the flag values
func (f *GlobalFlags) ParseArgs(args []string) error {
	if err := f.Flagset.Parse(args); err != nil {
		return err
	}
	f.NetworkParams = address.NetworkByName(f.Network)
	if f.NetworkParams == address.NetworkInvalid {
		return fmt.Errorf("invalid network specified: %s", f.Network)
	}
	switch f.Format {
	case FormatJSON, FormatCBOR:
	default:
		return fmt.Errorf("invalid output format specified: %s", f.Format)
	}
	return nil
}

// UnknownReceiverPolicy returns the decomposition policy selected by the -diagnostic flag
func (f *GlobalFlags) UnknownReceiverPolicy() decompose.UnknownReceiverPolicy {
	if f.Diagnostic {
		return decompose.UnknownReceiverDiagnostic
	}
	return decompose.UnknownReceiverDrop
}

// Logger returns a text logger writing to w, at debug level if -debug was specified
func (f *GlobalFlags) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	)
}
