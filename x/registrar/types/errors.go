package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Module error codes scoped by ModuleName.
// NOTE: Error code 1 is reserved by cosmos-sdk as internal error / unknown failure

var (
	ErrMalformedMessageBody   = errorsmod.Register(ModuleName, 2, "register message body malformed")
	ErrInvalidAddressEncoding = errorsmod.Register(ModuleName, 3, "invalid address encoding")
	ErrCredentialAlreadyBound = errorsmod.Register(ModuleName, 4, "embedded credential already registered to different address")
	ErrInvalidGenesis         = errorsmod.Register(ModuleName, 5, "invalid genesis state")
	ErrUntrustedOrigin        = errorsmod.Register(ModuleName, 6, "message does not come from the trusted originator")
	ErrBindingNotFound        = errorsmod.Register(ModuleName, 7, "credential binding not found")
	ErrRouteAlreadyRegistered = errorsmod.Register(ModuleName, 8, "application route already registered")
)
