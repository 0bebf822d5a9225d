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

import "github.com/blinklabs-io/zaddr/address"

// AddressType is the short symbolic tag for an address variant
type AddressType string

const (
	AddressTypeP2PKH   AddressType = "p2pkh"
	AddressTypeP2SH    AddressType = "p2sh"
	AddressTypeSapling AddressType = "sapling"
	AddressTypeUnified AddressType = "unified"
	AddressTypeTex     AddressType = "tex"
)

func (t AddressType) String() string {
	return string(t)
}

// Classify returns the type tag for the address
func Classify(addr address.Address) AddressType {
	return address.Convert[AddressType](addr, typeTagVisitor{})
}

type typeTagVisitor struct{}

func (typeTagVisitor) VisitP2PKH(address.Network, [address.TransparentHashSize]byte) AddressType {
	return AddressTypeP2PKH
}

func (typeTagVisitor) VisitP2SH(address.Network, [address.TransparentHashSize]byte) AddressType {
	return AddressTypeP2SH
}

func (typeTagVisitor) VisitSapling(address.Network, [address.SaplingDataSize]byte) AddressType {
	return AddressTypeSapling
}

func (typeTagVisitor) VisitUnified(address.Network, *address.UnifiedAddress) AddressType {
	return AddressTypeUnified
}

func (typeTagVisitor) VisitTex(address.Network, [address.TransparentHashSize]byte) AddressType {
	return AddressTypeTex
}
