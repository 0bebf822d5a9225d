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
	"fmt"
	"slices"
)

const (
	TransparentHashSize = 20
	SaplingDataSize     = 43
	OrchardDataSize     = 43

	// Largest value allowed for a CompactSize in a unified container
	MaxCompactSize = 0x02000000
)

// Typecode identifies the kind of a receiver inside a unified address
type Typecode uint32

const (
	TypecodeP2PKH   Typecode = 0x00
	TypecodeP2SH    Typecode = 0x01
	TypecodeSapling Typecode = 0x02
	TypecodeOrchard Typecode = 0x03
)

func (t Typecode) String() string {
	switch t {
	case TypecodeP2PKH:
		return "p2pkh"
	case TypecodeP2SH:
		return "p2sh"
	case TypecodeSapling:
		return "sapling"
	case TypecodeOrchard:
		return "orchard"
	default:
		return fmt.Sprintf("unknown(%#x)", uint32(t))
	}
}

// IsTransparent returns whether the typecode identifies a transparent receiver
func (t Typecode) IsTransparent() bool {
	return t == TypecodeP2PKH || t == TypecodeP2SH
}

func (t Typecode) isKnown() bool {
	return t <= TypecodeOrchard
}

// Receiver is a single typed item of a unified address
type Receiver interface {
	isReceiver()
	Typecode() Typecode
	Bytes() []byte
}

type ReceiverP2PKH struct {
	Hash [TransparentHashSize]byte
}

func (ReceiverP2PKH) isReceiver() {}

func (ReceiverP2PKH) Typecode() Typecode { return TypecodeP2PKH }

func (r ReceiverP2PKH) Bytes() []byte { return slices.Clone(r.Hash[:]) }

type ReceiverP2SH struct {
	Hash [TransparentHashSize]byte
}

func (ReceiverP2SH) isReceiver() {}

func (ReceiverP2SH) Typecode() Typecode { return TypecodeP2SH }

func (r ReceiverP2SH) Bytes() []byte { return slices.Clone(r.Hash[:]) }

type ReceiverSapling struct {
	Data [SaplingDataSize]byte
}

func (ReceiverSapling) isReceiver() {}

func (ReceiverSapling) Typecode() Typecode { return TypecodeSapling }

func (r ReceiverSapling) Bytes() []byte { return slices.Clone(r.Data[:]) }

type ReceiverOrchard struct {
	Data [OrchardDataSize]byte
}

func (ReceiverOrchard) isReceiver() {}

func (ReceiverOrchard) Typecode() Typecode { return TypecodeOrchard }

func (r ReceiverOrchard) Bytes() []byte { return slices.Clone(r.Data[:]) }

// ReceiverUnknown holds a receiver with a typecode that this package does not understand.
// Its raw data is kept so that the containing address can be re-encoded unchanged
type ReceiverUnknown struct {
	Type Typecode
	Data []byte
}

func (ReceiverUnknown) isReceiver() {}

func (r ReceiverUnknown) Typecode() Typecode { return r.Type }

func (r ReceiverUnknown) Bytes() []byte { return slices.Clone(r.Data) }

// newReceiver builds a typed receiver from a typecode and its raw data
func newReceiver(typecode Typecode, data []byte) (Receiver, error) {
	switch typecode {
	case TypecodeP2PKH:
		if len(data) != TransparentHashSize {
			return nil, fmt.Errorf("invalid p2pkh receiver length: %d", len(data))
		}
		return ReceiverP2PKH{Hash: [TransparentHashSize]byte(data)}, nil
	case TypecodeP2SH:
		if len(data) != TransparentHashSize {
			return nil, fmt.Errorf("invalid p2sh receiver length: %d", len(data))
		}
		return ReceiverP2SH{Hash: [TransparentHashSize]byte(data)}, nil
	case TypecodeSapling:
		if len(data) != SaplingDataSize {
			return nil, fmt.Errorf("invalid sapling receiver length: %d", len(data))
		}
		return ReceiverSapling{Data: [SaplingDataSize]byte(data)}, nil
	case TypecodeOrchard:
		if len(data) != OrchardDataSize {
			return nil, fmt.Errorf("invalid orchard receiver length: %d", len(data))
		}
		return ReceiverOrchard{Data: [OrchardDataSize]byte(data)}, nil
	default:
		if typecode > MaxCompactSize {
			return nil, fmt.Errorf("typecode out of range: %#x", uint32(typecode))
		}
		return ReceiverUnknown{Type: typecode, Data: slices.Clone(data)}, nil
	}
}

// preferenceRank orders typecodes from most to least preferred: unknown typecodes
// (highest first), then Orchard, Sapling, P2SH and P2PKH
func preferenceRank(t Typecode) int64 {
	if !t.isKnown() {
		return -int64(t)
	}
	return int64(TypecodeOrchard - t)
}
