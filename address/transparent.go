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
	"bytes"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	base58PrefixSize   = 2
	base58ChecksumSize = 4

	sproutPayloadSize = 64
)

var errBase58Checksum = errors.New("base58check checksum does not match")

// base58CheckEncode encodes the payload with a 2-byte version prefix and a
// double-SHA256 checksum
func base58CheckEncode(prefix [2]byte, payload []byte) string {
	buf := make([]byte, 0, base58PrefixSize+len(payload)+base58ChecksumSize)
	buf = append(buf, prefix[:]...)
	buf = append(buf, payload...)
	checksum := chainhash.DoubleHashB(buf)
	buf = append(buf, checksum[:base58ChecksumSize]...)
	return base58.Encode(buf)
}

// base58CheckDecode returns the version prefix and payload of a Base58Check string. The
// prefix and payload are also returned when only the checksum is wrong, so that callers
// can tell a corrupted address apart from something that isn't an address at all
func base58CheckDecode(s string) ([2]byte, []byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) < base58PrefixSize+base58ChecksumSize {
		return [2]byte{}, nil, errors.New("invalid base58 data")
	}
	prefix := [2]byte(decoded[:base58PrefixSize])
	payload := decoded[base58PrefixSize : len(decoded)-base58ChecksumSize]
	checksum := decoded[len(decoded)-base58ChecksumSize:]
	expected := chainhash.DoubleHashB(decoded[:len(decoded)-base58ChecksumSize])
	if !bytes.Equal(checksum, expected[:base58ChecksumSize]) {
		return prefix, payload, errBase58Checksum
	}
	return prefix, payload, nil
}

// parseTransparent parses a Base58Check encoded P2PKH or P2SH address
func parseTransparent(token string, net Network) (Address, error) {
	prefix, payload, err := base58CheckDecode(token)
	if err != nil && !errors.Is(err, errBase58Checksum) {
		return nil, unrecognizedError(err, "token is not Bech32 or Base58Check")
	}
	tokenNet, known := networkForPrefix(prefix)
	if !known {
		return nil, unrecognizedError(err, "unknown Base58Check prefix %x", prefix)
	}
	isSprout := prefix == tokenNet.SproutPrefix
	if (isSprout && len(payload) != sproutPayloadSize) ||
		(!isSprout && len(payload) != TransparentHashSize) {
		return nil, unrecognizedError(
			err,
			"invalid payload length %d for prefix %x",
			len(payload),
			prefix,
		)
	}
	if err != nil {
		return nil, mismatchError(err, "invalid transparent address checksum")
	}
	if isSprout {
		return nil, unrecognizedError(nil, "sprout addresses are not supported")
	}
	// Regtest shares the testnet prefixes, so compare the prefixes rather than the networks
	switch prefix {
	case net.P2PKHPrefix:
		return NewP2PKHAddress(net, [TransparentHashSize]byte(payload)), nil
	case net.P2SHPrefix:
		return NewP2SHAddress(net, [TransparentHashSize]byte(payload)), nil
	default:
		return nil, mismatchError(
			NetworkMismatchError{Expected: net, Actual: tokenNet},
			"transparent address for wrong network",
		)
	}
}
