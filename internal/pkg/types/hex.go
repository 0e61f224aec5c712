// Package types holds small shared value types used across the ledgerwatch
// packages, most notably Hex, the 0x-prefixed integer encoding used by the
// ledger's JSON-RPC API.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is an unsigned integer encoded as a 0x-prefixed hexadecimal string
// (e.g., "0x2a"). The zero value ("") means "not set".
type Hex string

// HexFromString validates s and returns it as a Hex value.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes v as a Hex value.
func HexFromUint64(v uint64) Hex {
	return Hex(fmt.Sprintf("0x%x", v))
}

// validateHex checks that s is a 0x-prefixed hexadecimal number that fits in
// an uint64.
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// IsEmpty reports whether the value is unset.
func (h Hex) IsEmpty() bool {
	return h == ""
}

// Uint64 returns the decoded integer value. Invalid or unset values decode
// to zero.
func (h Hex) Uint64() uint64 {
	if err := validateHex(string(h)); err != nil {
		return 0
	}

	v, _ := strconv.ParseUint(string(h)[2:], 16, 64)
	return v
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}
