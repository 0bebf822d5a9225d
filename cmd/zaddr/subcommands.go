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

package main

import (
	"errors"

	"github.com/blinklabs-io/zaddr"
	"github.com/jinzhu/copier"
)

var errInvalidAddress = errors.New("invalid address")

func runNormalize(p *zaddr.Parser, input string, out *resultWriter) error {
	normalized, err := p.Normalize(input)
	if err != nil {
		return err
	}
	return out.WriteLine(normalized)
}

func runValid(p *zaddr.Parser, input string, out *resultWriter) error {
	valid := p.IsValid(input)
	if err := out.WriteBool(valid); err != nil {
		return err
	}
	if !valid {
		return errInvalidAddress
	}
	return nil
}

func runClassify(p *zaddr.Parser, input string, out *resultWriter) error {
	addrType, err := p.Classify(input)
	if err != nil {
		return err
	}
	return out.WriteLine(addrType.String())
}

func runDecompose(p *zaddr.Parser, input string, out *resultWriter) error {
	receivers, err := p.Decompose(input)
	if err != nil {
		return err
	}
	return out.WriteResult(receivers)
}

// runInspect runs every query against the input and reports them together
func runInspect(p *zaddr.Parser, input string, out *resultWriter) error {
	result := inspectResult{
		Input: input,
		Valid: p.IsValid(input),
	}
	if !result.Valid {
		// Parse again to report why the input is invalid
		_, err := p.Parse(input)
		result.Error = err.Error()
		return out.WriteResult(result)
	}
	var err error
	if result.Normalized, err = p.Normalize(input); err != nil {
		return err
	}
	addrType, err := p.Classify(input)
	if err != nil {
		return err
	}
	result.Type = addrType.String()
	receivers, err := p.Decompose(input)
	if err != nil {
		return err
	}
	result.Receivers = &receiversOutput{}
	if err := copier.Copy(result.Receivers, &receivers); err != nil {
		return err
	}
	return out.WriteResult(result)
}
