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

import "fmt"

// Visitor handles each address variant. A type that does not implement every method cannot
// be passed to Convert
type Visitor[T any] interface {
	VisitP2PKH(net Network, hash [TransparentHashSize]byte) T
	VisitP2SH(net Network, hash [TransparentHashSize]byte) T
	VisitSapling(net Network, data [SaplingDataSize]byte) T
	VisitUnified(net Network, addr *UnifiedAddress) T
	VisitTex(net Network, hash [TransparentHashSize]byte) T
}

// Convert dispatches the address to the matching method of the visitor
func Convert[T any](addr Address, v Visitor[T]) T {
	switch a := addr.(type) {
	case *P2PKHAddress:
		return v.VisitP2PKH(a.network, a.hash)
	case *P2SHAddress:
		return v.VisitP2SH(a.network, a.hash)
	case *SaplingAddress:
		return v.VisitSapling(a.network, a.data)
	case *UnifiedAddress:
		return v.VisitUnified(a.network, a)
	case *TexAddress:
		return v.VisitTex(a.network, a.hash)
	default:
		// The Address interface is sealed, so this only happens for a nil address
		panic(fmt.Sprintf("unhandled address type: %T", addr))
	}
}
