package keeper

import (
	"context"

	"github.com/celestiaorg/credential-registration/x/originator/types"
)

// InitGenesis initialises the module genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	for _, envelope := range gs.Envelopes {
		key, err := envelope.DispatchedMessageKey()
		if err != nil {
			return err
		}
		if err := k.envelopes.Set(ctx, key, envelope); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis outputs the modules state for genesis exports.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	var envelopes []types.Envelope
	if err := k.envelopes.Walk(ctx, nil, func(_ []byte, value types.Envelope) (bool, error) {
		envelopes = append(envelopes, value)
		return false, nil
	}); err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Envelopes: envelopes,
	}, nil
}
