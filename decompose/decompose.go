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

// Package decompose breaks an address down into standalone single-pool addresses
package decompose

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/zaddr/address"
)

// UnknownReceiverPolicy controls how receivers with unrecognized typecodes are reported
type UnknownReceiverPolicy int

const (
	// UnknownReceiverDrop silently omits unknown receivers
	UnknownReceiverDrop UnknownReceiverPolicy = iota
	// UnknownReceiverDiagnostic adds a placeholder string for each unknown receiver
	UnknownReceiverDiagnostic
)

func (p UnknownReceiverPolicy) String() string {
	switch p {
	case UnknownReceiverDrop:
		return "drop"
	case UnknownReceiverDiagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("UnknownReceiverPolicy(%d)", int(p))
	}
}

// Receivers holds the encoded standalone address for each pool present in an address. A nil
// field means that the address has no receiver for that pool
type Receivers struct {
	P2PKH   *string  `json:"p2pkh"             cbor:"p2pkh"`
	P2SH    *string  `json:"p2sh"              cbor:"p2sh"`
	Sapling *string  `json:"sapling"           cbor:"sapling"`
	Orchard *string  `json:"orchard"           cbor:"orchard"`
	Unknown []string `json:"unknown,omitempty" cbor:"unknown,omitempty"`
}

// Decomposer turns addresses into Receivers
type Decomposer struct {
	unknownPolicy UnknownReceiverPolicy
	logger        *slog.Logger
}

// New returns a Decomposer with the specified options
func New(opts ...DecomposerOptionFunc) *Decomposer {
	d := &Decomposer{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Address decomposes the address using a Decomposer with the specified options
func Address(addr address.Address, opts ...DecomposerOptionFunc) Receivers {
	return New(opts...).Decompose(addr)
}

// Decompose returns the standalone address for each receiver of addr. Single-pool addresses
// populate exactly one field, and TEX addresses populate P2PKH. Orchard receivers are
// re-wrapped as a unified address containing only that receiver
func (d *Decomposer) Decompose(addr address.Address) Receivers {
	return address.Convert[Receivers](addr, &collector{decomposer: d})
}

// collector implements address.Visitor by accumulating receivers into a Receivers value
type collector struct {
	decomposer *Decomposer
	receivers  Receivers
}

func (c *collector) VisitP2PKH(net address.Network, hash [address.TransparentHashSize]byte) Receivers {
	c.setP2PKH(net, hash)
	return c.receivers
}

func (c *collector) VisitP2SH(net address.Network, hash [address.TransparentHashSize]byte) Receivers {
	c.setP2SH(net, hash)
	return c.receivers
}

func (c *collector) VisitSapling(net address.Network, data [address.SaplingDataSize]byte) Receivers {
	c.setSapling(net, data)
	return c.receivers
}

func (c *collector) VisitTex(net address.Network, hash [address.TransparentHashSize]byte) Receivers {
	// The TEX restriction is not carried over, callers must classify the address themselves
	c.setP2PKH(net, hash)
	return c.receivers
}

func (c *collector) VisitUnified(net address.Network, addr *address.UnifiedAddress) Receivers {
	for _, receiver := range addr.Receivers() {
		switch r := receiver.(type) {
		case address.ReceiverP2PKH:
			c.setP2PKH(net, r.Hash)
		case address.ReceiverP2SH:
			c.setP2SH(net, r.Hash)
		case address.ReceiverSapling:
			c.setSapling(net, r.Data)
		case address.ReceiverOrchard:
			c.setOrchard(net, r)
		default:
			c.addUnknown(receiver)
		}
	}
	return c.receivers
}

func (c *collector) setP2PKH(net address.Network, hash [address.TransparentHashSize]byte) {
	encoded := address.NewP2PKHAddress(net, hash).String()
	c.receivers.P2PKH = &encoded
}

func (c *collector) setP2SH(net address.Network, hash [address.TransparentHashSize]byte) {
	encoded := address.NewP2SHAddress(net, hash).String()
	c.receivers.P2SH = &encoded
}

func (c *collector) setSapling(net address.Network, data [address.SaplingDataSize]byte) {
	encoded := address.NewSaplingAddress(net, data).String()
	c.receivers.Sapling = &encoded
}

func (c *collector) setOrchard(net address.Network, receiver address.ReceiverOrchard) {
	ua, err := address.NewUnifiedAddress(net, receiver)
	if err != nil {
		c.decomposer.logger.Debug(
			"leaving orchard receiver out of decomposition",
			"component", "decompose",
			"network", net.Name,
			"error", err,
		)
		c.receivers.Orchard = nil
		return
	}
	encoded := ua.String()
	c.receivers.Orchard = &encoded
}

func (c *collector) addUnknown(receiver address.Receiver) {
	if c.decomposer.unknownPolicy != UnknownReceiverDiagnostic {
		c.decomposer.logger.Debug(
			"dropping unknown receiver",
			"component", "decompose",
			"typecode", uint32(receiver.Typecode()),
		)
		return
	}
	c.receivers.Unknown = append(
		c.receivers.Unknown,
		UnknownPlaceholder(receiver.Typecode(), len(receiver.Bytes())),
	)
}

// UnknownPlaceholder returns the diagnostic string used for an unknown receiver
func UnknownPlaceholder(typecode address.Typecode, length int) string {
	return fmt.Sprintf("unknown(typecode=%#x, %d bytes)", uint32(typecode), length)
}
