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
	"testing"

	"github.com/blinklabs-io/zaddr/internal/test"
	"github.com/stretchr/testify/assert"
)

type typeNameVisitor struct{}

func (typeNameVisitor) VisitP2PKH(Network, [TransparentHashSize]byte) string { return "p2pkh" }

func (typeNameVisitor) VisitP2SH(Network, [TransparentHashSize]byte) string { return "p2sh" }

func (typeNameVisitor) VisitSapling(Network, [SaplingDataSize]byte) string { return "sapling" }

func (typeNameVisitor) VisitUnified(Network, *UnifiedAddress) string { return "unified" }

func (typeNameVisitor) VisitTex(Network, [TransparentHashSize]byte) string { return "tex" }

func typeName(addr Address) string {
	return Convert[string](addr, typeNameVisitor{})
}

// payloadVisitor returns the network and raw payload of each address variant
type payloadVisitor struct{}

type visitResult struct {
	network Network
	payload []byte
}

func (payloadVisitor) VisitP2PKH(net Network, hash [TransparentHashSize]byte) visitResult {
	return visitResult{net, hash[:]}
}

func (payloadVisitor) VisitP2SH(net Network, hash [TransparentHashSize]byte) visitResult {
	return visitResult{net, hash[:]}
}

func (payloadVisitor) VisitSapling(net Network, data [SaplingDataSize]byte) visitResult {
	return visitResult{net, data[:]}
}

func (payloadVisitor) VisitUnified(net Network, addr *UnifiedAddress) visitResult {
	// Most preferred receiver
	return visitResult{net, addr.Receivers()[0].Bytes()}
}

func (payloadVisitor) VisitTex(net Network, hash [TransparentHashSize]byte) visitResult {
	return visitResult{net, hash[:]}
}

func TestConvert(t *testing.T) {
	testDefs := []struct {
		address    string
		network    Network
		payloadHex string
	}{
		{address: test.MainnetP2PKH, network: NetworkMainnet, payloadHex: test.P2PKHHashHex},
		{address: test.TestnetP2SH, network: NetworkTestnet, payloadHex: test.P2SHHashHex},
		{address: test.RegtestSapling, network: NetworkRegtest, payloadHex: test.SaplingDataHex},
		{address: test.MainnetTex, network: NetworkMainnet, payloadHex: test.P2PKHHashHex},
		{address: test.MainnetUnified, network: NetworkMainnet, payloadHex: test.OrchardDataHex},
		{address: test.MainnetUnifiedUnknownOrchard, network: NetworkMainnet, payloadHex: test.UnknownDataHex},
	}
	for _, testDef := range testDefs {
		addr, err := Parse(testDef.address, testDef.network)
		if err != nil {
			t.Fatalf("unexpected error parsing %s: %s", testDef.address, err)
		}
		res := Convert[visitResult](addr, payloadVisitor{})
		assert.Equal(t, testDef.network, res.network)
		assert.Equal(t, test.DecodeHexString(testDef.payloadHex), res.payload)
	}
}

func TestConvertNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		Convert[string](nil, typeNameVisitor{})
	})
}
