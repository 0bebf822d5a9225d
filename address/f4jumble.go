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
	"encoding/binary"
	"fmt"

	"github.com/dchest/blake2b"
)

// F4Jumble is the unkeyed 4-round Feistel construction from ZIP-316 that is applied to
// the raw encoding of a unified address before Bech32m encoding

const (
	F4JumbleMinLength = 48
	F4JumbleMaxLength = 4194368

	f4HashSize = blake2b.Size
)

var (
	f4PersonH = []byte("UA_F4Jumble_H")
	f4PersonG = []byte("UA_F4Jumble_G")
)

// F4Jumble returns the jumbled form of the message
func F4Jumble(msg []byte) ([]byte, error) {
	if err := checkF4JumbleLength(len(msg)); err != nil {
		return nil, err
	}
	leftLen, rightLen := f4Split(len(msg))
	a := msg[:leftLen]
	b := msg[leftLen:]
	x, err := f4Xor(b, func() ([]byte, error) { return f4G(0, a, rightLen) })
	if err != nil {
		return nil, err
	}
	y, err := f4Xor(a, func() ([]byte, error) { return f4H(0, x, leftLen) })
	if err != nil {
		return nil, err
	}
	d, err := f4Xor(x, func() ([]byte, error) { return f4G(1, y, rightLen) })
	if err != nil {
		return nil, err
	}
	c, err := f4Xor(y, func() ([]byte, error) { return f4H(1, d, leftLen) })
	if err != nil {
		return nil, err
	}
	return append(c, d...), nil
}

// F4JumbleInv reverses F4Jumble
func F4JumbleInv(msg []byte) ([]byte, error) {
	if err := checkF4JumbleLength(len(msg)); err != nil {
		return nil, err
	}
	leftLen, rightLen := f4Split(len(msg))
	c := msg[:leftLen]
	d := msg[leftLen:]
	y, err := f4Xor(c, func() ([]byte, error) { return f4H(1, d, leftLen) })
	if err != nil {
		return nil, err
	}
	x, err := f4Xor(d, func() ([]byte, error) { return f4G(1, y, rightLen) })
	if err != nil {
		return nil, err
	}
	a, err := f4Xor(y, func() ([]byte, error) { return f4H(0, x, leftLen) })
	if err != nil {
		return nil, err
	}
	b, err := f4Xor(x, func() ([]byte, error) { return f4G(0, a, rightLen) })
	if err != nil {
		return nil, err
	}
	return append(a, b...), nil
}

func checkF4JumbleLength(length int) error {
	if length < F4JumbleMinLength || length > F4JumbleMaxLength {
		return fmt.Errorf(
			"invalid F4Jumble message length: %d (must be between %d and %d)",
			length,
			F4JumbleMinLength,
			F4JumbleMaxLength,
		)
	}
	return nil
}

func f4Split(length int) (int, int) {
	leftLen := min(f4HashSize, length/2)
	return leftLen, length - leftLen
}

// f4Xor returns a new slice with the contents of data XORed with the output of mask
func f4Xor(data []byte, mask func() ([]byte, error)) ([]byte, error) {
	maskBytes, err := mask()
	if err != nil {
		return nil, err
	}
	ret := make([]byte, len(data))
	for i := range data {
		ret[i] = data[i] ^ maskBytes[i]
	}
	return ret, nil
}

// f4H is the H_i round function, a personalized BLAKE2b with an outLen byte digest
func f4H(round byte, data []byte, outLen int) ([]byte, error) {
	person := make([]byte, 0, blake2b.PersonSize)
	person = append(person, f4PersonH...)
	person = append(person, round, 0, 0)
	h, err := blake2b.New(&blake2b.Config{
		Size:   uint8(outLen), // #nosec G115 -- outLen is at most 64
		Person: person,
	})
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// f4G is the G_i round function, which concatenates as many personalized BLAKE2b-512
// digests as needed to produce outLen bytes
func f4G(round byte, data []byte, outLen int) ([]byte, error) {
	ret := make([]byte, 0, outLen+f4HashSize)
	var counter [2]byte
	for j := 0; len(ret) < outLen; j++ {
		binary.LittleEndian.PutUint16(counter[:], uint16(j)) // #nosec G115
		person := make([]byte, 0, blake2b.PersonSize)
		person = append(person, f4PersonG...)
		person = append(person, round)
		person = append(person, counter[:]...)
		h, err := blake2b.New(&blake2b.Config{
			Size:   f4HashSize,
			Person: person,
		})
		if err != nil {
			return nil, err
		}
		h.Write(data)
		ret = h.Sum(ret)
	}
	return ret[:outLen], nil
}
