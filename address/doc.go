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

// Package address parses, validates and encodes Zcash addresses.
//
// Every operation takes an explicit Network. A token that is valid for one network never
// parses under another.
//
// # Key Files by Purpose
//
// Types:
//   - address.go: Address interface and the single-pool address variants
//   - unified.go: UnifiedAddress (ZIP-316) and the container rules
//   - receiver.go: Receiver types and typecodes
//   - networks.go: Network parameters and lookups
//
// Encoding:
//   - parse.go: Parse, which dispatches on the Bech32 HRP or Base58Check prefix
//   - transparent.go: Base58Check
//   - f4jumble.go: the F4Jumble permutation applied to unified addresses
//
// Dispatch:
//   - visitor.go: Visitor and Convert, for handling every address variant
//
// # Errors
//
// Parse failures are returned as *ParseError, which matches one of
// ErrUnrecognizedEncoding, ErrChecksumOrNetworkMismatch or ErrMalformedUnifiedContainer
// with errors.Is.
package address
