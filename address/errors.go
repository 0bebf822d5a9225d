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
	"errors"
	"fmt"
)

// Sentinel errors for the kinds of parse failure, for use with errors.Is
var (
	ErrUnrecognizedEncoding = errors.New(
		"not a recognized address encoding",
	)
	ErrChecksumOrNetworkMismatch = errors.New(
		"checksum or network mismatch",
	)
	ErrMalformedUnifiedContainer = errors.New(
		"malformed unified container",
	)
)

// ErrInvalidNetwork is returned when an operation is given a network that isn't one of
// the predefined networks
var ErrInvalidNetwork = errors.New("invalid network")

// ParseError describes why a token could not be parsed as an address. Kind is one of
// the sentinel errors above
type ParseError struct {
	Kind   error
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func newParseError(kind error, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:   kind,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func unrecognizedError(err error, format string, args ...any) *ParseError {
	return newParseError(ErrUnrecognizedEncoding, err, format, args...)
}

func mismatchError(err error, format string, args ...any) *ParseError {
	return newParseError(ErrChecksumOrNetworkMismatch, err, format, args...)
}

func malformedError(err error, format string, args ...any) *ParseError {
	return newParseError(ErrMalformedUnifiedContainer, err, format, args...)
}

// NetworkMismatchError indicates that a token is valid for a different network than
// the one it was parsed against. It is returned as the Err of a ParseError
type NetworkMismatchError struct {
	Expected Network
	Actual   Network
}

func (e NetworkMismatchError) Error() string {
	return fmt.Sprintf(
		"address is for network %s, expected %s",
		e.Actual,
		e.Expected,
	)
}
