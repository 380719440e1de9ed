package keeper

import (
	"strconv"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EmitCredentialBoundEvent emits an event to signal a new credential binding.
// The message id is attached when the binding came in through Handle.
func EmitCredentialBoundEvent(ctx sdk.Context, credential wire.Credential, owner sdk.AccAddress, origin uint32, messageId *util.HexAddress) {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyCredential, credential.String()),
		sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
		sdk.NewAttribute(types.AttributeKeyOrigin, strconv.FormatUint(uint64(origin), 10)),
	}
	if messageId != nil {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyMessageId, messageId.String()))
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeCredentialBound, attrs...))
}
