package types

import (
	"fmt"

	"github.com/celestiaorg/credential-registration/pkg/wire"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Binding is the exported form of a credential binding.
type Binding struct {
	Credential string `json:"credential"`
	Owner      string `json:"owner"`
}

// NewBinding renders a stored binding.
func NewBinding(credential wire.Credential, owner sdk.AccAddress) Binding {
	return Binding{
		Credential: credential.String(),
		Owner:      owner.String(),
	}
}

// Decode parses the credential and owner of a binding.
func (b Binding) Decode() (wire.Credential, sdk.AccAddress, error) {
	credential, err := wire.ParseCredential(b.Credential)
	if err != nil {
		return wire.Credential{}, nil, fmt.Errorf("credential %q: %w", b.Credential, err)
	}

	owner, err := sdk.AccAddressFromBech32(b.Owner)
	if err != nil {
		return wire.Credential{}, nil, fmt.Errorf("owner %q: %w", b.Owner, err)
	}

	return credential, owner, nil
}
