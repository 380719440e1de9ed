package types

import (
	"encoding/hex"
	"fmt"

	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "registrar"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MaxPaginationLimit is the maximum number of bindings returned in a paginated query.
	MaxPaginationLimit = 100

	EventTypeCredentialBound = "registrar.credential_bound"

	AttributeKeyCredential = "credential"
	AttributeKeyOwner      = "owner"
	AttributeKeyOrigin     = "origin"
	AttributeKeyMessageId  = "message_id"
)

// BindingsKeyPrefix maps a 32-byte credential to the address it is bound to.
var BindingsKeyPrefix = collections.NewPrefix(0)

// EncodeHex encodes a byte slice as a 0x prefixed hexadecimal string.
func EncodeHex(bz []byte) string {
	return fmt.Sprintf("0x%s", hex.EncodeToString(bz))
}
