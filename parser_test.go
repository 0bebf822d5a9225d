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

package zaddr

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/blinklabs-io/zaddr/address"
	"github.com/blinklabs-io/zaddr/decompose"
	"github.com/blinklabs-io/zaddr/extract"
	"github.com/blinklabs-io/zaddr/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var mainnetAddresses = []struct {
	address     string
	addressType AddressType
}{
	{address: test.MainnetP2PKH, addressType: AddressTypeP2PKH},
	{address: test.MainnetP2SH, addressType: AddressTypeP2SH},
	{address: test.MainnetSapling, addressType: AddressTypeSapling},
	{address: test.MainnetTex, addressType: AddressTypeTex},
	{address: test.MainnetUnified, addressType: AddressTypeUnified},
	{address: test.MainnetUnifiedOrchard, addressType: AddressTypeUnified},
	{address: test.MainnetUnifiedUnknownOrchard, addressType: AddressTypeUnified},
}

func TestNormalizeRoundTrip(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	for _, testDef := range mainnetAddresses {
		normalized, err := p.Normalize(testDef.address)
		require.NoError(t, err)
		assert.Equal(t, testDef.address, normalized)
	}
}

func TestNormalizeNoise(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	noise := []struct {
		prefix string
		suffix string
	}{
		{"", ""},
		{"see my address: ", " thanks"},
		{"<", ">"},
		{"\n\t  ", "\r\n"},
		{"pay to -> ", "!!!"},
		{"zcash:", "?amount=1.5"},
		{"short words first, ", " then more"},
	}
	for _, testDef := range mainnetAddresses {
		for _, n := range noise {
			normalized, err := p.Normalize(n.prefix + testDef.address + n.suffix)
			require.NoError(t, err)
			assert.Equal(t, testDef.address, normalized)
		}
	}
}

func TestNormalizeUppercase(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	normalized, err := p.Normalize(fmt.Sprintf("UA: %s", upper(test.MainnetUnified)))
	require.NoError(t, err)
	assert.Equal(t, test.MainnetUnified, normalized)
}

func TestClassify(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	for _, testDef := range mainnetAddresses {
		addrType, err := p.Classify(testDef.address)
		require.NoError(t, err)
		assert.Equal(t, testDef.addressType, addrType)
		// Classification is stable under normalization
		normalized, err := p.Normalize("address: " + testDef.address)
		require.NoError(t, err)
		normalizedType, err := p.Classify(normalized)
		require.NoError(t, err)
		assert.Equal(t, addrType, normalizedType)
	}
}

func TestClassifyOtherNetworks(t *testing.T) {
	testDefs := []struct {
		network     address.Network
		address     string
		addressType AddressType
	}{
		{address.NetworkTestnet, test.TestnetP2PKH, AddressTypeP2PKH},
		{address.NetworkTestnet, test.TestnetP2SH, AddressTypeP2SH},
		{address.NetworkTestnet, test.TestnetSapling, AddressTypeSapling},
		{address.NetworkTestnet, test.TestnetTex, AddressTypeTex},
		{address.NetworkTestnet, test.TestnetUnified, AddressTypeUnified},
		{address.NetworkRegtest, test.RegtestSapling, AddressTypeSapling},
		{address.NetworkRegtest, test.RegtestUnified, AddressTypeUnified},
	}
	for _, testDef := range testDefs {
		p := NewParser(testDef.network)
		addrType, err := p.Classify(testDef.address)
		require.NoError(t, err)
		assert.Equal(t, testDef.addressType, addrType)
		// Every other network rejects the address, except for the shared transparent prefixes
		for _, net := range address.Networks() {
			if net == testDef.network {
				continue
			}
			_, err := NewParser(net).Classify(testDef.address)
			if testDef.addressType == AddressTypeP2PKH || testDef.addressType == AddressTypeP2SH {
				if net != address.NetworkMainnet {
					continue
				}
			}
			assert.ErrorIs(t, err, address.ErrChecksumOrNetworkMismatch)
		}
	}
}

func TestDecomposeSinglePool(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	testDefs := []struct {
		address  string
		expected decompose.Receivers
	}{
		{test.MainnetP2PKH, decompose.Receivers{P2PKH: strPtr(test.MainnetP2PKH)}},
		{test.MainnetP2SH, decompose.Receivers{P2SH: strPtr(test.MainnetP2SH)}},
		{test.MainnetSapling, decompose.Receivers{Sapling: strPtr(test.MainnetSapling)}},
		{test.MainnetTex, decompose.Receivers{P2PKH: strPtr(test.MainnetP2PKH)}},
	}
	for _, testDef := range testDefs {
		receivers, err := p.Decompose(testDef.address)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, receivers)
	}
}

func TestDecomposeUnified(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	receivers, err := p.Decompose(test.MainnetUnified)
	require.NoError(t, err)
	assert.Nil(t, receivers.P2SH)
	assert.Nil(t, receivers.Unknown)
	expected := map[AddressType]*string{
		AddressTypeP2PKH:   receivers.P2PKH,
		AddressTypeSapling: receivers.Sapling,
		AddressTypeUnified: receivers.Orchard,
	}
	for addrType, encoded := range expected {
		require.NotNil(t, encoded, "missing %s receiver", addrType)
		// Each receiver is a standalone address of its own kind
		normalized, err := p.Normalize(*encoded)
		require.NoError(t, err)
		assert.Equal(t, *encoded, normalized)
		reclassified, err := p.Classify(*encoded)
		require.NoError(t, err)
		assert.Equal(t, addrType, reclassified)
	}
}

func TestDecomposeDiagnostic(t *testing.T) {
	p := NewParser(
		address.NetworkMainnet,
		WithUnknownReceiverPolicy(decompose.UnknownReceiverDiagnostic),
	)
	receivers, err := p.Decompose(test.MainnetUnifiedUnknownOrchard)
	require.NoError(t, err)
	assert.Equal(t, []string{"unknown(typecode=0x5, 10 bytes)"}, receivers.Unknown)
	strict, err := NewParser(address.NetworkMainnet).Decompose(test.MainnetUnifiedUnknownOrchard)
	require.NoError(t, err)
	assert.Nil(t, strict.Unknown)
}

func TestEndToEndExample(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	input := "see my address: t1XUKmDLFcRDxvf9A7tawmgePDN8NK6os35 thanks"
	normalized, err := p.Normalize(input)
	require.NoError(t, err)
	assert.Equal(t, "t1XUKmDLFcRDxvf9A7tawmgePDN8NK6os35", normalized)
	addrType, err := p.Classify(input)
	require.NoError(t, err)
	assert.Equal(t, AddressTypeP2PKH, addrType)
	receivers, err := p.Decompose(input)
	require.NoError(t, err)
	assert.Equal(
		t,
		decompose.Receivers{P2PKH: strPtr("t1XUKmDLFcRDxvf9A7tawmgePDN8NK6os35")},
		receivers,
	)
	assert.True(t, p.IsValid(input))
}

func TestFailures(t *testing.T) {
	p := NewParser(address.NetworkMainnet)
	testDefs := []struct {
		input       string
		expectedErr error
	}{
		{"", extract.ErrNotAnAddress},
		{"!!! ... ??? ,,,", extract.ErrNotAnAddress},
		{"t1XUKmDLFcRDxvf9A7tawmgePD(Invalid)", address.ErrUnrecognizedEncoding},
		{"invalid_address", extract.ErrNotAnAddress},
		{"t1Zskf9m4PbJX9E8A7HHbq6sVKZdpFwLZ#", address.ErrUnrecognizedEncoding},
		{"foobar1234567890notreal", address.ErrUnrecognizedEncoding},
		{"💩💩💩", extract.ErrNotAnAddress},
		// Correct length but invalid checksum
		{"t1XUKmDLFcRDxvf9A7tawmgePDN8NK6os36", address.ErrChecksumOrNetworkMismatch},
		{test.TestnetSapling, address.ErrChecksumOrNetworkMismatch},
		{test.MalformedUnifiedDuplicate, address.ErrMalformedUnifiedContainer},
	}
	for _, testDef := range testDefs {
		_, err := p.Normalize(testDef.input)
		if !errors.Is(err, testDef.expectedErr) {
			t.Errorf("did not get expected error for %q: got %v, expected %v", testDef.input, err, testDef.expectedErr)
		}
		_, err = p.Classify(testDef.input)
		assert.ErrorIs(t, err, testDef.expectedErr)
		receivers, err := p.Decompose(testDef.input)
		assert.ErrorIs(t, err, testDef.expectedErr)
		assert.Equal(t, decompose.Receivers{}, receivers)
		assert.False(t, p.IsValid(testDef.input))
	}
}

func TestInvalidNetwork(t *testing.T) {
	p := NewParser(address.NetworkByName("nonexistent"))
	_, err := p.Normalize(test.MainnetP2PKH)
	assert.ErrorIs(t, err, address.ErrInvalidNetwork)
	assert.False(t, p.IsValid(test.MainnetP2PKH))
}

func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)
	p := NewParser(address.NetworkMainnet)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			testDef := mainnetAddresses[i%len(mainnetAddresses)]
			for range 10 {
				normalized, err := p.Normalize("addr: " + testDef.address)
				assert.NoError(t, err)
				assert.Equal(t, testDef.address, normalized)
				addrType, err := p.Classify(testDef.address)
				assert.NoError(t, err)
				assert.Equal(t, testDef.addressType, addrType)
				_, err = p.Decompose(testDef.address)
				assert.NoError(t, err)
				assert.True(t, p.IsValid(testDef.address))
			}
		}()
	}
	wg.Wait()
}

func strPtr(s string) *string {
	return &s
}

func upper(s string) string {
	ret := []byte(s)
	for i, c := range ret {
		if c >= 'a' && c <= 'z' {
			ret[i] = c - ('a' - 'A')
		}
	}
	return string(ret)
}
