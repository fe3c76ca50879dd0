package entity

import (
	"encoding/hex"
	"strings"
)

// contractHexLength is the number of hex characters in a 20-byte EVM address.
const contractHexLength = 40

// NormalizeContractAddress returns the canonical form of a contract address:
// 0x-prefixed, lower-cased hex. Returns a ValidationError if the input is not
// a well-formed 20-byte hex address.
func NormalizeContractAddress(addr string) (string, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	if len(trimmed) != contractHexLength {
		return "", &ValidationError{Field: "contract", Message: "must be a 20-byte hex address"}
	}
	if _, err := hex.DecodeString(trimmed); err != nil {
		return "", &ValidationError{Field: "contract", Message: "must be valid hex"}
	}
	return "0x" + trimmed, nil
}

// ContractBytes decodes a canonical contract address into its binary form,
// matching the store's binary column encoding.
func ContractBytes(addr string) ([]byte, error) {
	canonical, err := NormalizeContractAddress(addr)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(strings.TrimPrefix(canonical, "0x"))
}
