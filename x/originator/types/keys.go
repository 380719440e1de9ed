package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "originator"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	EventTypeRegister = "originator.register"

	AttributeKeyMessageId         = "message_id"
	AttributeKeyPayer             = "payer"
	AttributeKeyCredential        = "credential"
	AttributeKeyDestination       = "destination"
	AttributeKeyRecipient         = "recipient"
	AttributeKeyDispatchedMessage = "dispatched_message"
)

// EnvelopesKeyPrefix indexes recorded envelopes by dispatched message account.
var EnvelopesKeyPrefix = collections.NewPrefix(0)
