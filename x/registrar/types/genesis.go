package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/celestiaorg/credential-registration/pkg/wire"
)

// GenesisState holds every credential binding.
type GenesisState struct {
	Bindings []Binding `json:"bindings"`
}

// DefaultGenesis returns the default genesis state for the registrar module
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate rejects malformed bindings and credentials bound more than once.
func (gs GenesisState) Validate() error {
	seen := make(map[wire.Credential]struct{}, len(gs.Bindings))
	for i, binding := range gs.Bindings {
		credential, _, err := binding.Decode()
		if err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "binding %d: %s", i, err)
		}
		if _, ok := seen[credential]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "credential %s bound more than once", credential)
		}
		seen[credential] = struct{}{}
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
