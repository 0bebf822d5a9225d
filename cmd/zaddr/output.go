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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/blinklabs-io/zaddr/cbor"
	"github.com/blinklabs-io/zaddr/cmd/common"
)

// receiversOutput mirrors decompose.Receivers but leaves out absent receivers
type receiversOutput struct {
	P2PKH   *string  `json:"p2pkh,omitempty"   cbor:"p2pkh,omitempty"`
	P2SH    *string  `json:"p2sh,omitempty"    cbor:"p2sh,omitempty"`
	Sapling *string  `json:"sapling,omitempty" cbor:"sapling,omitempty"`
	Orchard *string  `json:"orchard,omitempty" cbor:"orchard,omitempty"`
	Unknown []string `json:"unknown,omitempty" cbor:"unknown,omitempty"`
}

type inspectResult struct {
	Input      string           `json:"input"                cbor:"input"`
	Valid      bool             `json:"valid"                cbor:"valid"`
	Normalized string           `json:"normalized,omitempty" cbor:"normalized,omitempty"`
	Type       string           `json:"type,omitempty"       cbor:"type,omitempty"`
	Receivers  *receiversOutput `json:"receivers,omitempty"  cbor:"receivers,omitempty"`
	Error      string           `json:"error,omitempty"      cbor:"error,omitempty"`
}

// resultWriter writes one result per line. Structured results are written as JSON or as
// hex-encoded CBOR
type resultWriter struct {
	format string
	w      io.Writer
}

func (r *resultWriter) WriteLine(line string) error {
	_, err := fmt.Fprintln(r.w, line)
	return err
}

func (r *resultWriter) WriteBool(val bool) error {
	return r.WriteLine(strconv.FormatBool(val))
}

func (r *resultWriter) WriteResult(result any) error {
	switch r.format {
	case common.FormatCBOR:
		data, err := cbor.Encode(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as CBOR: %w", err)
		}
		return r.WriteLine(hex.EncodeToString(data))
	default:
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as JSON: %w", err)
		}
		return r.WriteLine(string(data))
	}
}
