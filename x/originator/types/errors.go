package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module error codes scoped by ModuleName.
// NOTE: Error code 1 is reserved by cosmos-sdk as internal error / unknown failure

var (
	ErrUntrustedMessagingProgram  = errorsmod.Register(ModuleName, 2, "untrusted messaging program")
	ErrUntrustedDispatchAuthority = errorsmod.Register(ModuleName, 3, "untrusted dispatch authority")
	ErrUntrustedSystemAccount     = errorsmod.Register(ModuleName, 4, "untrusted system account")
	ErrInvalidRecipientEncoding   = errorsmod.Register(ModuleName, 5, "invalid recipient encoding")
	ErrMalformedSubstrateResponse = errorsmod.Register(ModuleName, 6, "malformed messaging substrate response")
	ErrInvalidInstruction         = errorsmod.Register(ModuleName, 7, "invalid instruction")
	ErrDuplicateUniqueAccount     = errorsmod.Register(ModuleName, 8, "unique message account already used")
	ErrUnauthorizedSigner         = errorsmod.Register(ModuleName, 9, "unauthorized signer")
	ErrInvalidPayer               = errorsmod.Register(ModuleName, 10, "invalid payer")
	ErrInvalidDispatchedMessage   = errorsmod.Register(ModuleName, 11, "dispatched message account does not match unique message")
	ErrEnvelopeNotFound           = errorsmod.Register(ModuleName, 12, "envelope not found")
	ErrInvalidGenesis             = errorsmod.Register(ModuleName, 13, "invalid genesis state")
)
