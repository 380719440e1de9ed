// Package identity converts between the 32-byte identities carried in
// Hyperlane envelopes and their textual and account representations.
package identity

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/cosmos/btcutil/base58"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Length is the size of every identity carried in an envelope.
	Length = 32

	// cosmosAddressLen is the length of a key-backed cosmos account address.
	cosmosAddressLen = 20
)

var ErrInvalidEncoding = errors.New("invalid identity encoding")

// ParseAddress decodes a 32-byte identity written either as hex (the 0x
// prefix is optional) or as base58.
func ParseAddress(s string) (util.HexAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return util.HexAddress{}, fmt.Errorf("%w: empty string", ErrInvalidEncoding)
	}

	if isHex(s) {
		addr, err := util.DecodeHexAddress(s)
		if err != nil {
			return util.HexAddress{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return addr, nil
	}

	bz := base58.Decode(s)
	if len(bz) != Length {
		return util.HexAddress{}, fmt.Errorf("%w: %q decodes to %d bytes, expected %d", ErrInvalidEncoding, s, len(bz), Length)
	}

	var addr util.HexAddress
	copy(addr[:], bz)
	return addr, nil
}

// MustParseAddress is like ParseAddress but panics on malformed input. It is
// meant for compiled-in well-known identities.
func MustParseAddress(s string) util.HexAddress {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// Base58 renders an identity in the base58 form used by sealevel chains.
func Base58(addr util.HexAddress) string {
	return base58.Encode(addr[:])
}

// FromAccAddress left-pads a cosmos account address into a 32-byte identity.
func FromAccAddress(acc sdk.AccAddress) (util.HexAddress, error) {
	if len(acc) == 0 || len(acc) > Length {
		return util.HexAddress{}, fmt.Errorf("%w: account address must be 1..%d bytes, got %d", ErrInvalidEncoding, Length, len(acc))
	}

	var addr util.HexAddress
	copy(addr[Length-len(acc):], acc)
	return addr, nil
}

// ToAccAddress converts a 32-byte identity into a cosmos account address.
// Identities with a 12-byte zero prefix map to 20-byte key-backed accounts,
// everything else keeps the full 32 bytes.
func ToAccAddress(addr util.HexAddress) (sdk.AccAddress, error) {
	if addr.IsZeroAddress() {
		return nil, fmt.Errorf("%w: zero identity is not an account", ErrInvalidEncoding)
	}

	var acc sdk.AccAddress
	if isZero(addr[:Length-cosmosAddressLen]) {
		acc = sdk.AccAddress(addr[Length-cosmosAddressLen:])
	} else {
		acc = sdk.AccAddress(addr[:])
	}

	if err := sdk.VerifyAddressFormat(acc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	return acc, nil
}

func isHex(s string) bool {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return true
	}
	if len(s) != 2*Length {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func isZero(bz []byte) bool {
	for _, b := range bz {
		if b != 0 {
			return false
		}
	}
	return true
}
