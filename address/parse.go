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

package address

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Parse parses an address token for the specified network. Tokens that are valid for a
// different network are rejected with ErrChecksumOrNetworkMismatch
func Parse(token string, net Network) (Address, error) {
	if !net.Valid() {
		return nil, ErrInvalidNetwork
	}
	if token == "" {
		return nil, unrecognizedError(nil, "empty token")
	}
	// Most address types use Bech32 or Bech32m, so we try those first
	if addr, ok, err := parseBech32(token, net); ok {
		return addr, err
	}
	return parseTransparent(token, net)
}

// parseBech32 attempts to parse the token as a Bech32/Bech32m encoded address. It returns
// false if the token should be tried as Base58Check instead
func parseBech32(token string, net Network) (Address, bool, error) {
	hrp, data, version, err := bech32.DecodeNoLimitWithVersion(token)
	if err != nil {
		// A bad checksum with a known HRP is a corrupted address rather than
		// something else entirely
		var checksumErr bech32.ErrInvalidChecksum
		if errors.As(err, &checksumErr) {
			if _, _, known := networkForHRP(bech32HRP(token)); known {
				return nil, true, mismatchError(err, "invalid bech32 checksum")
			}
		}
		return nil, false, nil
	}
	tokenNet, _, known := networkForHRP(hrp)
	if !known {
		return nil, true, unrecognizedError(nil, "unknown human-readable part %q", hrp)
	}
	kind := net.hrpKind(hrp)
	if kind == hrpKindNone {
		return nil, true, mismatchError(
			NetworkMismatchError{Expected: net, Actual: tokenNet},
			"human-readable part %q is for the wrong network",
			hrp,
		)
	}
	switch kind {
	case hrpKindSapling:
		if version != bech32.Version0 {
			return nil, true, mismatchError(nil, "sapling address must use a bech32 checksum")
		}
		payload, err := bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return nil, true, unrecognizedError(err, "invalid sapling address data")
		}
		if len(payload) != SaplingDataSize {
			return nil, true, unrecognizedError(
				nil,
				"invalid sapling address length: %d",
				len(payload),
			)
		}
		return NewSaplingAddress(net, [SaplingDataSize]byte(payload)), true, nil
	case hrpKindTex:
		if version != bech32.VersionM {
			return nil, true, mismatchError(nil, "tex address must use a bech32m checksum")
		}
		payload, err := bech32.ConvertBits(data, 5, 8, false)
		if err != nil {
			return nil, true, unrecognizedError(err, "invalid tex address data")
		}
		if len(payload) != TransparentHashSize {
			return nil, true, unrecognizedError(
				nil,
				"invalid tex address length: %d",
				len(payload),
			)
		}
		return NewTexAddress(net, [TransparentHashSize]byte(payload)), true, nil
	default:
		if version != bech32.VersionM {
			return nil, true, mismatchError(nil, "unified address must use a bech32m checksum")
		}
		addr, err := decodeUnified(net, data)
		if err != nil {
			return nil, true, err
		}
		return addr, true, nil
	}
}

// bech32HRP returns the lowercase human-readable part of a possibly invalid Bech32 string
func bech32HRP(token string) string {
	idx := strings.LastIndexByte(token, '1')
	if idx < 1 {
		return ""
	}
	return strings.ToLower(token[:idx])
}
