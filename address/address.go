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
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Address is a parsed and validated Zcash address. The set of implementations is closed:
// *P2PKHAddress, *P2SHAddress, *SaplingAddress, *TexAddress and *UnifiedAddress
type Address interface {
	isAddress()
	// Network returns the network the address is encoded for
	Network() Network
	// String returns the canonical encoding of the address
	String() string
}

type P2PKHAddress struct {
	network Network
	hash    [TransparentHashSize]byte
}

// NewP2PKHAddress returns a transparent P2PKH address for the provided public key hash
func NewP2PKHAddress(net Network, hash [TransparentHashSize]byte) *P2PKHAddress {
	return &P2PKHAddress{network: net, hash: hash}
}

func (*P2PKHAddress) isAddress() {}

func (a *P2PKHAddress) Network() Network { return a.network }

func (a *P2PKHAddress) Hash() [TransparentHashSize]byte { return a.hash }

func (a *P2PKHAddress) String() string {
	return base58CheckEncode(a.network.P2PKHPrefix, a.hash[:])
}

type P2SHAddress struct {
	network Network
	hash    [TransparentHashSize]byte
}

// NewP2SHAddress returns a transparent P2SH address for the provided script hash
func NewP2SHAddress(net Network, hash [TransparentHashSize]byte) *P2SHAddress {
	return &P2SHAddress{network: net, hash: hash}
}

func (*P2SHAddress) isAddress() {}

func (a *P2SHAddress) Network() Network { return a.network }

func (a *P2SHAddress) Hash() [TransparentHashSize]byte { return a.hash }

func (a *P2SHAddress) String() string {
	return base58CheckEncode(a.network.P2SHPrefix, a.hash[:])
}

type SaplingAddress struct {
	network Network
	data    [SaplingDataSize]byte
}

// NewSaplingAddress returns a Sapling shielded address for the provided payment address bytes
func NewSaplingAddress(net Network, data [SaplingDataSize]byte) *SaplingAddress {
	return &SaplingAddress{network: net, data: data}
}

func (*SaplingAddress) isAddress() {}

func (a *SaplingAddress) Network() Network { return a.network }

func (a *SaplingAddress) Data() [SaplingDataSize]byte { return a.data }

func (a *SaplingAddress) String() string {
	return encodeBech32(a.network.SaplingHRP, a.data[:], bech32.Version0)
}

// TexAddress is a transparent-source-only (ZIP-320) address. It wraps a P2PKH public key
// hash, but callers must not send funds to it directly from a shielded pool
type TexAddress struct {
	network Network
	hash    [TransparentHashSize]byte
}

// NewTexAddress returns a TEX address for the provided public key hash
func NewTexAddress(net Network, hash [TransparentHashSize]byte) *TexAddress {
	return &TexAddress{network: net, hash: hash}
}

func (*TexAddress) isAddress() {}

func (a *TexAddress) Network() Network { return a.network }

func (a *TexAddress) Hash() [TransparentHashSize]byte { return a.hash }

func (a *TexAddress) String() string {
	return encodeBech32(a.network.TexHRP, a.hash[:], bech32.VersionM)
}

// Equal returns whether two addresses are the same variant with the same network and payload
func Equal(a, b Address) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Network() != b.Network() {
		return false
	}
	switch x := a.(type) {
	case *P2PKHAddress:
		y, ok := b.(*P2PKHAddress)
		return ok && x.hash == y.hash
	case *P2SHAddress:
		y, ok := b.(*P2SHAddress)
		return ok && x.hash == y.hash
	case *SaplingAddress:
		y, ok := b.(*SaplingAddress)
		return ok && x.data == y.data
	case *TexAddress:
		y, ok := b.(*TexAddress)
		return ok && x.hash == y.hash
	case *UnifiedAddress:
		y, ok := b.(*UnifiedAddress)
		return ok && slices.EqualFunc(x.receivers, y.receivers, receiverEqual)
	default:
		return false
	}
}

func receiverEqual(a, b Receiver) bool {
	return a.Typecode() == b.Typecode() && bytes.Equal(a.Bytes(), b.Bytes())
}

// encodeBech32 encodes 8-bit data as Bech32 or Bech32m without any length limit
func encodeBech32(hrp string, data []byte, version bech32.Version) string {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("unexpected error converting data to base32: %s", err))
	}
	var encoded string
	if version == bech32.VersionM {
		encoded, err = bech32.EncodeM(hrp, convData)
	} else {
		encoded, err = bech32.Encode(hrp, convData)
	}
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}
