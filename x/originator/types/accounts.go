package types

import (
	"fmt"

	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
)

// AccountsLen is the number of accounts a register instruction expects.
const AccountsLen = 8

// Accounts are the caller supplied identities a register call operates on.
// Nothing in here is trusted until the keeper has checked it.
type Accounts struct {
	Mailbox           util.HexAddress
	Outbox            util.HexAddress
	DispatchAuthority util.HexAddress
	SystemProgram     util.HexAddress
	NoopProgram       util.HexAddress
	Payer             util.HexAddress
	UniqueMessage     util.HexAddress
	DispatchedMessage util.HexAddress
}

// AccountsFromList maps a positional account list onto Accounts, in the
// order mailbox, outbox, dispatch authority, system program, noop program,
// payer, unique message, dispatched message.
func AccountsFromList(list []util.HexAddress) (Accounts, error) {
	if len(list) != AccountsLen {
		return Accounts{}, fmt.Errorf("%w: expected %d accounts, got %d", ErrInvalidInstruction, AccountsLen, len(list))
	}

	return Accounts{
		Mailbox:           list[0],
		Outbox:            list[1],
		DispatchAuthority: list[2],
		SystemProgram:     list[3],
		NoopProgram:       list[4],
		Payer:             list[5],
		UniqueMessage:     list[6],
		DispatchedMessage: list[7],
	}, nil
}

// List returns the accounts in positional order.
func (a Accounts) List() []util.HexAddress {
	return []util.HexAddress{
		a.Mailbox,
		a.Outbox,
		a.DispatchAuthority,
		a.SystemProgram,
		a.NoopProgram,
		a.Payer,
		a.UniqueMessage,
		a.DispatchedMessage,
	}
}

// ParseAccounts decodes a positional list of hex or base58 identities.
func ParseAccounts(list []string) (Accounts, error) {
	addrs := make([]util.HexAddress, 0, len(list))
	for i, s := range list {
		addr, err := identity.ParseAddress(s)
		if err != nil {
			return Accounts{}, fmt.Errorf("%w: account %d: %v", ErrInvalidInstruction, i, err)
		}
		addrs = append(addrs, addr)
	}
	return AccountsFromList(addrs)
}

// OutboxAccounts is the subset of accounts forwarded to the mailbox.
func (a Accounts) OutboxAccounts() OutboxAccounts {
	return OutboxAccounts{
		Outbox:            a.Outbox,
		DispatchAuthority: a.DispatchAuthority,
		SystemProgram:     a.SystemProgram,
		NoopProgram:       a.NoopProgram,
		Payer:             a.Payer,
		UniqueMessage:     a.UniqueMessage,
		DispatchedMessage: a.DispatchedMessage,
	}
}
