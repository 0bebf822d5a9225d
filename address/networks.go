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

const (
	NetworkIdTestnet = 0
	NetworkIdMainnet = 1
	NetworkIdRegtest = 2
)

// Network definitions
var (
	NetworkMainnet = Network{
		Id:           NetworkIdMainnet,
		Name:         "mainnet",
		P2PKHPrefix:  [2]byte{0x1c, 0xb8},
		P2SHPrefix:   [2]byte{0x1c, 0xbd},
		SproutPrefix: [2]byte{0x16, 0x9a},
		SaplingHRP:   "zs",
		TexHRP:       "tex",
		UnifiedHRP:   "u",
	}
	NetworkTestnet = Network{
		Id:           NetworkIdTestnet,
		Name:         "testnet",
		P2PKHPrefix:  [2]byte{0x1d, 0x25},
		P2SHPrefix:   [2]byte{0x1c, 0xba},
		SproutPrefix: [2]byte{0x16, 0xb6},
		SaplingHRP:   "ztestsapling",
		TexHRP:       "textest",
		UnifiedHRP:   "utest",
	}
	// Regtest reuses the testnet transparent prefixes, so transparent
	// addresses cannot be told apart between the two
	NetworkRegtest = Network{
		Id:           NetworkIdRegtest,
		Name:         "regtest",
		P2PKHPrefix:  [2]byte{0x1d, 0x25},
		P2SHPrefix:   [2]byte{0x1c, 0xba},
		SproutPrefix: [2]byte{0x16, 0xb6},
		SaplingHRP:   "zregtestsapling",
		TexHRP:       "texregtest",
		UnifiedHRP:   "uregtest",
	}

	NetworkInvalid = Network{
		Id:   0xff,
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkRegtest,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkById returns a predefined network by ID
func NetworkById(id uint8) Network {
	for _, network := range networks {
		if network.Id == id {
			return network
		}
	}
	return NetworkInvalid
}

// Networks returns the list of known networks
func Networks() []Network {
	ret := make([]Network, len(networks))
	copy(ret, networks)
	return ret
}

// Network represents the address encoding parameters of a Zcash network
type Network struct {
	Id           uint8
	Name         string
	P2PKHPrefix  [2]byte // Base58Check version bytes for P2PKH addresses
	P2SHPrefix   [2]byte // Base58Check version bytes for P2SH addresses
	SproutPrefix [2]byte // Base58Check version bytes for (unsupported) Sprout addresses
	SaplingHRP   string
	TexHRP       string
	UnifiedHRP   string
}

func (n Network) String() string {
	return n.Name
}

// Valid returns whether the network is one of the predefined networks
func (n Network) Valid() bool {
	return n != NetworkInvalid && n.Name != ""
}

// hrpKind identifies which address kind a Bech32 HRP belongs to
type hrpKind int

const (
	hrpKindNone hrpKind = iota
	hrpKindSapling
	hrpKindTex
	hrpKindUnified
)

func (n Network) hrpKind(hrp string) hrpKind {
	switch hrp {
	case n.SaplingHRP:
		return hrpKindSapling
	case n.TexHRP:
		return hrpKindTex
	case n.UnifiedHRP:
		return hrpKindUnified
	default:
		return hrpKindNone
	}
}

// networkForHRP returns the known network that uses the specified HRP, if any
func networkForHRP(hrp string) (Network, hrpKind, bool) {
	for _, network := range networks {
		if kind := network.hrpKind(hrp); kind != hrpKindNone {
			return network, kind, true
		}
	}
	return NetworkInvalid, hrpKindNone, false
}

// networkForPrefix returns the first known network that uses the specified Base58Check prefix
func networkForPrefix(prefix [2]byte) (Network, bool) {
	for _, network := range networks {
		if prefix == network.P2PKHPrefix || prefix == network.P2SHPrefix ||
			prefix == network.SproutPrefix {
			return network, true
		}
	}
	return NetworkInvalid, false
}
