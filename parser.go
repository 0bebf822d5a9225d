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

// Package zaddr recovers Zcash addresses from free-form text, classifies them and breaks
// unified addresses down into standalone single-pool addresses.
//
// A Parser is bound to a single network and is safe for concurrent use.
package zaddr

import (
	"log/slog"

	"github.com/blinklabs-io/zaddr/address"
	"github.com/blinklabs-io/zaddr/decompose"
	"github.com/blinklabs-io/zaddr/extract"
)

// Parser extracts and parses addresses for a specific network
type Parser struct {
	network       address.Network
	logger        *slog.Logger
	unknownPolicy decompose.UnknownReceiverPolicy
	decomposer    *decompose.Decomposer
}

// NewParser returns a Parser for the specified network
func NewParser(net address.Network, opts ...ParserOptionFunc) *Parser {
	p := &Parser{
		network: net,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.decomposer = decompose.New(
		decompose.WithUnknownReceiverPolicy(p.unknownPolicy),
		decompose.WithLogger(p.logger),
	)
	return p
}

// Network returns the network that addresses are parsed for
func (p *Parser) Network() address.Network {
	return p.network
}

// Parse extracts the first address token from the input and parses it. The returned error
// matches extract.ErrNotAnAddress or one of the address.Err* parse errors
func (p *Parser) Parse(raw string) (address.Address, error) {
	token, err := extract.Extract(raw)
	if err != nil {
		p.logger.Debug(
			"no address token in input",
			"component", "zaddr",
			"input_length", len(raw),
		)
		return nil, err
	}
	addr, err := address.Parse(token.String(), p.network)
	if err != nil {
		p.logger.Debug(
			"failed to parse address",
			"component", "zaddr",
			"network", p.network.Name,
			"token", token.String(),
			"error", err,
		)
		return nil, err
	}
	return addr, nil
}

// Normalize returns the canonical encoding of the address found in the input
func (p *Parser) Normalize(raw string) (string, error) {
	addr, err := p.Parse(raw)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// IsValid returns whether the input contains a valid address for the network
func (p *Parser) IsValid(raw string) bool {
	_, err := p.Parse(raw)
	return err == nil
}

// Classify returns the type tag of the address found in the input
func (p *Parser) Classify(raw string) (AddressType, error) {
	addr, err := p.Parse(raw)
	if err != nil {
		return "", err
	}
	return Classify(addr), nil
}

// Decompose returns the standalone addresses for each receiver of the address found in the input
func (p *Parser) Decompose(raw string) (decompose.Receivers, error) {
	addr, err := p.Parse(raw)
	if err != nil {
		return decompose.Receivers{}, err
	}
	return p.decomposer.Decompose(addr), nil
}
