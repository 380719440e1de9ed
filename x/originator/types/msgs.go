package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgRegister asks the originator to dispatch a registration on behalf of
// Signer, who is also the payer. Account identities are hex or base58.
type MsgRegister struct {
	Signer string `json:"signer"`

	Mailbox           string `json:"mailbox"`
	Outbox            string `json:"outbox"`
	DispatchAuthority string `json:"dispatch_authority"`
	SystemProgram     string `json:"system_program"`
	NoopProgram       string `json:"noop_program"`
	UniqueMessage     string `json:"unique_message"`
	DispatchedMessage string `json:"dispatched_message"`

	DestinationDomain  uint32    `json:"destination_domain"`
	EmbeddedCredential string    `json:"embedded_credential"`
	Recipient          string    `json:"recipient"`
	MaxFee             sdk.Coins `json:"max_fee,omitempty"`
}

// MsgRegisterResponse carries the id of the dispatched envelope.
type MsgRegisterResponse struct {
	MessageId string `json:"message_id"`
}

// ValidateBasic performs stateless validation. The recipient is left to the
// keeper so that account checks are always reported first.
func (msg *MsgRegister) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errorsmod.Wrapf(ErrInvalidPayer, "invalid signer address: %s", err)
	}

	if _, err := wire.ParseCredential(msg.EmbeddedCredential); err != nil {
		return errorsmod.Wrapf(ErrInvalidInstruction, "invalid embedded credential: %s", err)
	}

	if !msg.MaxFee.IsValid() {
		return errorsmod.Wrapf(ErrInvalidInstruction, "invalid max fee: %s", msg.MaxFee)
	}

	return nil
}

// Resolve converts the message into the accounts and register message the
// keeper operates on. The payer is the signer's account padded to 32 bytes.
func (msg *MsgRegister) Resolve() (Accounts, wire.RegisterMessage, error) {
	signer, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return Accounts{}, wire.RegisterMessage{}, errorsmod.Wrapf(ErrInvalidPayer, "invalid signer address: %s", err)
	}

	payer, err := identity.FromAccAddress(signer)
	if err != nil {
		return Accounts{}, wire.RegisterMessage{}, errorsmod.Wrap(ErrInvalidPayer, err.Error())
	}

	fields := []struct {
		name  string
		value string
	}{
		{"mailbox", msg.Mailbox},
		{"outbox", msg.Outbox},
		{"dispatch_authority", msg.DispatchAuthority},
		{"system_program", msg.SystemProgram},
		{"noop_program", msg.NoopProgram},
		{"unique_message", msg.UniqueMessage},
		{"dispatched_message", msg.DispatchedMessage},
	}

	addrs := make([]util.HexAddress, len(fields))
	for i, f := range fields {
		addrs[i], err = identity.ParseAddress(f.value)
		if err != nil {
			return Accounts{}, wire.RegisterMessage{}, errorsmod.Wrapf(ErrInvalidInstruction, "%s: %s", f.name, err)
		}
	}

	credential, err := wire.ParseCredential(msg.EmbeddedCredential)
	if err != nil {
		return Accounts{}, wire.RegisterMessage{}, errorsmod.Wrapf(ErrInvalidInstruction, "invalid embedded credential: %s", err)
	}

	accounts := Accounts{
		Mailbox:           addrs[0],
		Outbox:            addrs[1],
		DispatchAuthority: addrs[2],
		SystemProgram:     addrs[3],
		NoopProgram:       addrs[4],
		Payer:             payer,
		UniqueMessage:     addrs[5],
		DispatchedMessage: addrs[6],
	}

	return accounts, wire.RegisterMessage{
		Destination:        msg.DestinationDomain,
		EmbeddedCredential: credential,
		Recipient:          msg.Recipient,
	}, nil
}

func (msg *MsgRegister) String() string {
	return fmt.Sprintf("MsgRegister{signer: %s, destination: %d, credential: %s, recipient: %s}",
		msg.Signer, msg.DestinationDomain, msg.EmbeddedCredential, msg.Recipient)
}
