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

// Package extract recovers a candidate address token from free-form text
package extract

import (
	"errors"
	"regexp"
)

// MinTokenLength is the shortest run of alphanumeric characters that is considered a
// candidate address
const MinTokenLength = 20

var ErrNotAnAddress = errors.New("no address found in input")

var tokenRegexp = regexp.MustCompile(`[0-9A-Za-z]{20,}`)

// Token is a substring of the input that may contain an address. It has not been validated
type Token string

func (t Token) String() string {
	return string(t)
}

// Extract returns the first maximal run of at least MinTokenLength ASCII alphanumeric
// characters in the input. Later runs are ignored
func Extract(raw string) (Token, error) {
	match := tokenRegexp.FindString(raw)
	if match == "" {
		return "", ErrNotAnAddress
	}
	return Token(match), nil
}
