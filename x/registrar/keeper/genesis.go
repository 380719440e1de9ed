package keeper

import (
	"context"

	"github.com/celestiaorg/credential-registration/x/registrar/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InitGenesis initialises the module genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	for _, binding := range gs.Bindings {
		credential, owner, err := binding.Decode()
		if err != nil {
			return err
		}
		if err := k.bindings.Set(ctx, credential.Bytes(), owner.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis outputs the modules state for genesis exports.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	var bindings []types.Binding
	if err := k.bindings.Walk(ctx, nil, func(credential, owner []byte) (bool, error) {
		bindings = append(bindings, types.Binding{
			Credential: types.EncodeHex(credential),
			Owner:      sdk.AccAddress(owner).String(),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Bindings: bindings,
	}, nil
}
