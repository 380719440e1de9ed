package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState is the originator's exported state: every envelope it has
// dispatched.
type GenesisState struct {
	Envelopes []Envelope `json:"envelopes"`
}

// DefaultGenesis returns the default genesis state for the originator module
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Envelopes))
	for i, envelope := range gs.Envelopes {
		if err := envelope.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "envelope %d: %s", i, err)
		}

		key, err := envelope.DispatchedMessageKey()
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "envelope %d: %s", i, err)
		}
		if _, ok := seen[string(key)]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate envelope for dispatched message %s", envelope.DispatchedMessage)
		}
		seen[string(key)] = struct{}{}
	}
	return nil
}

// ValidateGenesis validates genesis state
func ValidateGenesis(gs *GenesisState) error {
	if gs == nil {
		return nil
	}
	return gs.Validate()
}
