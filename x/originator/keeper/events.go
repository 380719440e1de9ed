package keeper

import (
	"strconv"

	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EmitRegisterEvent emits an event to signal a dispatched registration.
func EmitRegisterEvent(ctx sdk.Context, envelope types.Envelope) {
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRegister,
		sdk.NewAttribute(types.AttributeKeyMessageId, envelope.MessageId),
		sdk.NewAttribute(types.AttributeKeyPayer, envelope.Payer),
		sdk.NewAttribute(types.AttributeKeyCredential, envelope.Credential),
		sdk.NewAttribute(types.AttributeKeyDestination, strconv.FormatUint(uint64(envelope.Destination), 10)),
		sdk.NewAttribute(types.AttributeKeyRecipient, envelope.Recipient),
		sdk.NewAttribute(types.AttributeKeyDispatchedMessage, envelope.DispatchedMessage),
	))
}
