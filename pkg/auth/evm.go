package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrSignatureMismatch is returned when a signature recovers to another address.
var ErrSignatureMismatch = errors.New("signature does not match address")

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature and
// returns the address that produced it.
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}
	if len(sigBytes) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", crypto.SignatureLength, len(sigBytes))
	}

	// wallets emit v as 27/28, recovery wants 0/1
	if sigBytes[crypto.RecoveryIDOffset] >= 27 {
		sigBytes[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(personalHash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// VerifyWalletSignature checks that signature over message was made by address.
func VerifyWalletSignature(address, message, signature string) error {
	if !ValidateEVMAddress(address) {
		return fmt.Errorf("invalid wallet address %q", address)
	}
	recovered, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return err
	}
	if recovered != common.HexToAddress(address) {
		return fmt.Errorf("%w: recovered %s", ErrSignatureMismatch, recovered.Hex())
	}
	return nil
}

func personalHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// ValidateEVMAddress reports whether address is 0x followed by 40 hex digits.
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") || len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns the checksummed form of address.
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}
