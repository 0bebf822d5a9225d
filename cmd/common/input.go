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

package common

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// maxInputLineSize bounds a single line read from stdin. The longest valid unified
// address is several megabytes
const maxInputLineSize = 16 * 1024 * 1024

var ErrNoInput = errors.New("no input provided")

// Inputs returns the inputs to process: the positional args if any were given, and
// otherwise every non-blank line read from r
func Inputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var ret []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ret) == 0 {
		return nil, ErrNoInput
	}
	return ret, nil
}
