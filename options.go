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
	"log/slog"

	"github.com/blinklabs-io/zaddr/decompose"
)

// ParserOptionFunc is a type that represents functions that modify the Parser config
type ParserOptionFunc func(*Parser)

// WithLogger specifies the logger. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ParserOptionFunc {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithUnknownReceiverPolicy specifies how Decompose reports unified receivers with unknown typecodes
func WithUnknownReceiverPolicy(policy decompose.UnknownReceiverPolicy) ParserOptionFunc {
	return func(p *Parser) {
		p.unknownPolicy = policy
	}
}
