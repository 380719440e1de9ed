package keeper

import (
	"context"

	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer handles originator transactions.
type MsgServer struct {
	k *Keeper
}

// NewMsgServerImpl returns a MsgServer backed by keeper.
func NewMsgServerImpl(keeper *Keeper) MsgServer {
	return MsgServer{k: keeper}
}

// Register handles MsgRegister.
func (m MsgServer) Register(ctx context.Context, msg *types.MsgRegister) (*types.MsgRegisterResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	accounts, registerMsg, err := msg.Resolve()
	if err != nil {
		return nil, err
	}

	messageId, err := m.k.Register(sdk.UnwrapSDKContext(ctx), accounts, registerMsg, msg.MaxFee)
	if err != nil {
		return nil, err
	}

	return &types.MsgRegisterResponse{MessageId: messageId.String()}, nil
}
