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

// Package cbor provides deterministic CBOR encoding for results handed to embedding hosts.
//
// It wraps github.com/fxamacker/cbor/v2. Struct fields are encoded as maps keyed by their
// `cbor` tags, with keys sorted in core deterministic order, so equal values always
// produce identical bytes. Absent pointer fields are encoded as CBOR null.
//
// # Usage
//
//	data, err := cbor.Encode(receivers)
//	...
//	var out decompose.Receivers
//	_, err = cbor.Decode(data, &out)
//
// Decode rejects unknown struct fields and duplicate map keys.
package cbor
