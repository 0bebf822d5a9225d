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
	"io"
	"slices"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/wire"
)

// Length of the HRP padding appended to the raw encoding of a unified container
const unifiedPaddingSize = 16

// UnifiedAddress is a ZIP-316 unified address bundling receivers from several pools
type UnifiedAddress struct {
	network Network
	// Receivers in encoding order (ascending typecode)
	receivers []Receiver
}

// NewUnifiedAddress builds a unified address from the provided receivers, which may be given
// in any order. The receivers must have unique typecodes, must not include both P2PKH and
// P2SH, and must include at least one shielded receiver
func NewUnifiedAddress(net Network, receivers ...Receiver) (*UnifiedAddress, error) {
	if !net.Valid() {
		return nil, ErrInvalidNetwork
	}
	items := make([]Receiver, 0, len(receivers))
	for _, r := range receivers {
		if r == nil {
			return nil, malformedError(nil, "nil receiver")
		}
		switch r.(type) {
		case ReceiverUnknown, *ReceiverUnknown:
			if r.Typecode().isKnown() {
				return nil, malformedError(
					nil,
					"invalid typecode for unknown receiver: %#x",
					uint32(r.Typecode()),
				)
			}
		}
		item, err := newReceiver(r.Typecode(), r.Bytes())
		if err != nil {
			return nil, malformedError(err, "invalid receiver")
		}
		items = append(items, item)
	}
	slices.SortStableFunc(items, func(a, b Receiver) int {
		return int(a.Typecode()) - int(b.Typecode())
	})
	if err := validateReceivers(items); err != nil {
		return nil, err
	}
	ret := &UnifiedAddress{
		network:   net,
		receivers: items,
	}
	if err := checkF4JumbleLength(len(ret.rawBytes())); err != nil {
		return nil, malformedError(err, "invalid encoded length")
	}
	return ret, nil
}

func (*UnifiedAddress) isAddress() {}

func (a *UnifiedAddress) Network() Network { return a.network }

// Receivers returns a copy of the receivers in preference order, most preferred first
func (a *UnifiedAddress) Receivers() []Receiver {
	ret := a.ReceiversAsParsed()
	slices.SortStableFunc(ret, func(x, y Receiver) int {
		rankX, rankY := preferenceRank(x.Typecode()), preferenceRank(y.Typecode())
		switch {
		case rankX < rankY:
			return -1
		case rankX > rankY:
			return 1
		default:
			return 0
		}
	})
	return ret
}

// ReceiversAsParsed returns a copy of the receivers in encoding order
func (a *UnifiedAddress) ReceiversAsParsed() []Receiver {
	ret := make([]Receiver, 0, len(a.receivers))
	for _, r := range a.receivers {
		ret = append(ret, cloneReceiver(r))
	}
	return ret
}

// String returns the Bech32m encoding of the address
func (a *UnifiedAddress) String() string {
	jumbled, err := F4Jumble(a.rawBytes())
	if err != nil {
		panic(fmt.Sprintf("unexpected error jumbling unified address: %s", err))
	}
	return encodeBech32(a.network.UnifiedHRP, jumbled, bech32.VersionM)
}

// rawBytes returns the TLV-encoded receivers followed by the HRP padding
func (a *UnifiedAddress) rawBytes() []byte {
	buf := bytes.NewBuffer(nil)
	for _, r := range a.receivers {
		data := r.Bytes()
		// Writes to a bytes.Buffer cannot fail
		_ = wire.WriteVarInt(buf, 0, uint64(r.Typecode()))
		_ = wire.WriteVarInt(buf, 0, uint64(len(data)))
		_, _ = buf.Write(data)
	}
	_, _ = buf.Write(unifiedPadding(a.network.UnifiedHRP))
	return buf.Bytes()
}

func unifiedPadding(hrp string) []byte {
	ret := make([]byte, unifiedPaddingSize)
	copy(ret, hrp)
	return ret
}

// decodeUnified decodes the 5-bit Bech32m data of a unified address
func decodeUnified(net Network, data []byte) (*UnifiedAddress, error) {
	jumbled, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, malformedError(err, "invalid bech32 data")
	}
	raw, err := F4JumbleInv(jumbled)
	if err != nil {
		return nil, malformedError(err, "invalid encoded length")
	}
	body := raw[:len(raw)-unifiedPaddingSize]
	padding := raw[len(raw)-unifiedPaddingSize:]
	if !bytes.Equal(padding, unifiedPadding(net.UnifiedHRP)) {
		return nil, malformedError(nil, "invalid padding bytes")
	}
	receivers, err := decodeReceivers(body)
	if err != nil {
		return nil, malformedError(err, "invalid receiver encoding")
	}
	if err := validateReceivers(receivers); err != nil {
		return nil, err
	}
	return &UnifiedAddress{
		network:   net,
		receivers: receivers,
	}, nil
}

func decodeReceivers(data []byte) ([]Receiver, error) {
	var ret []Receiver
	r := bytes.NewReader(data)
	for r.Len() > 0 {
		typecode, err := readCompactSize(r)
		if err != nil {
			return nil, fmt.Errorf("typecode: %w", err)
		}
		length, err := readCompactSize(r)
		if err != nil {
			return nil, fmt.Errorf("length: %w", err)
		}
		if length > uint64(r.Len()) {
			return nil, fmt.Errorf(
				"receiver length %d exceeds remaining data (%d bytes)",
				length,
				r.Len(),
			)
		}
		itemData := make([]byte, length)
		if _, err := io.ReadFull(r, itemData); err != nil {
			return nil, err
		}
		receiver, err := newReceiver(Typecode(typecode), itemData)
		if err != nil {
			return nil, err
		}
		ret = append(ret, receiver)
	}
	return ret, nil
}

// readCompactSize reads a canonically encoded CompactSize no larger than MaxCompactSize
func readCompactSize(r io.Reader) (uint64, error) {
	val, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, err
	}
	if val > MaxCompactSize {
		return 0, fmt.Errorf("compact size %d out of range", val)
	}
	return val, nil
}

// validateReceivers checks the container rules for receivers in encoding order
func validateReceivers(receivers []Receiver) error {
	if len(receivers) == 0 {
		return malformedError(nil, "unified address contains no receivers")
	}
	onlyTransparent := true
	for i, r := range receivers {
		t := r.Typecode()
		if i > 0 {
			prev := receivers[i-1].Typecode()
			switch {
			case t < prev:
				return malformedError(nil, "receivers are not in typecode order")
			case t == prev:
				return malformedError(nil, "duplicate typecode %s", t)
			case t == TypecodeP2SH && prev == TypecodeP2PKH:
				return malformedError(nil, "both p2pkh and p2sh receivers are present")
			}
		}
		onlyTransparent = onlyTransparent && t.IsTransparent()
	}
	if onlyTransparent {
		return malformedError(nil, "unified address contains only transparent receivers")
	}
	return nil
}

func cloneReceiver(r Receiver) Receiver {
	if unk, ok := r.(ReceiverUnknown); ok {
		return ReceiverUnknown{Type: unk.Type, Data: slices.Clone(unk.Data)}
	}
	return r
}
