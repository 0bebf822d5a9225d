package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeHash20 decodes a hex string that must contain exactly 20 bytes
func DecodeHash20(hexData string) [20]byte {
	decoded := DecodeHexString(hexData)
	if len(decoded) != 20 {
		panic(fmt.Sprintf("expected 20 bytes, got %d", len(decoded)))
	}
	return [20]byte(decoded)
}

// DecodeData43 decodes a hex string that must contain exactly 43 bytes
func DecodeData43(hexData string) [43]byte {
	decoded := DecodeHexString(hexData)
	if len(decoded) != 43 {
		panic(fmt.Sprintf("expected 43 bytes, got %d", len(decoded)))
	}
	return [43]byte(decoded)
}
