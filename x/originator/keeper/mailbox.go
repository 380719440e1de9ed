package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ types.Mailbox = (*HyperlaneMailbox)(nil)

// HyperlaneMailbox implements types.Mailbox on top of the hyperlane core
// keeper. Before dispatching it performs the signer check an invoking
// runtime would do for a derived identity: the signer seeds, hashed under the
// invoker, must reproduce the dispatch authority.
type HyperlaneMailbox struct {
	coreKeeper types.HyperlaneKeeper
	gasLimit   uint64
}

// NewHyperlaneMailbox wraps the hyperlane core keeper. gasLimit is forwarded
// to post-dispatch hooks with every message.
func NewHyperlaneMailbox(coreKeeper types.HyperlaneKeeper, gasLimit uint64) *HyperlaneMailbox {
	if coreKeeper == nil {
		panic("coreKeeper cannot be nil")
	}
	return &HyperlaneMailbox{
		coreKeeper: coreKeeper,
		gasLimit:   gasLimit,
	}
}

// OutboxDispatch implements types.Mailbox.
func (m *HyperlaneMailbox) OutboxDispatch(ctx sdk.Context, mailboxId, invoker util.HexAddress, signerSeeds [][]byte, dispatch types.OutboxDispatch) (types.ReturnData, error) {
	signer, err := identity.CreateProgramAddress(signerSeeds, invoker)
	if err != nil {
		return types.ReturnData{}, errorsmod.Wrap(types.ErrUnauthorizedSigner, err.Error())
	}
	if signer != dispatch.Accounts.DispatchAuthority {
		return types.ReturnData{}, errorsmod.Wrapf(types.ErrUnauthorizedSigner, "signer seeds derive %s, dispatch authority is %s", signer, dispatch.Accounts.DispatchAuthority)
	}
	if dispatch.Sender != invoker {
		return types.ReturnData{}, errorsmod.Wrapf(types.ErrUnauthorizedSigner, "sender %s is not the invoking program %s", dispatch.Sender, invoker)
	}

	outbox, err := OutboxAddress(mailboxId)
	if err != nil {
		return types.ReturnData{}, err
	}
	if outbox != dispatch.Accounts.Outbox {
		return types.ReturnData{}, errorsmod.Wrapf(types.ErrUntrustedMessagingProgram, "outbox %s does not belong to mailbox %s", dispatch.Accounts.Outbox, mailboxId)
	}

	dispatched, err := DispatchedMessageAddress(mailboxId, dispatch.Accounts.UniqueMessage)
	if err != nil {
		return types.ReturnData{}, err
	}
	if dispatched != dispatch.Accounts.DispatchedMessage {
		return types.ReturnData{}, errorsmod.Wrapf(types.ErrInvalidDispatchedMessage, "expected %s, got %s", dispatched, dispatch.Accounts.DispatchedMessage)
	}

	metadata := util.StandardHookMetadata{GasLimit: math.NewIntFromUint64(m.gasLimit)}

	messageId, err := m.coreKeeper.DispatchMessage(
		ctx,
		mailboxId,
		dispatch.Sender,
		dispatch.MaxFee,
		dispatch.DestinationDomain,
		dispatch.Recipient,
		dispatch.MessageBody,
		metadata,
		nil,
	)
	if err != nil {
		return types.ReturnData{}, err
	}

	return types.ReturnData{
		ProgramId: mailboxId,
		Data:      messageId.Bytes(),
	}, nil
}

// OutboxAddress derives the outbox account of a mailbox.
func OutboxAddress(mailboxId util.HexAddress) (util.HexAddress, error) {
	outbox, _, err := identity.FindProgramAddress(types.OutboxSeeds(), mailboxId)
	return outbox, err
}

// DispatchedMessageAddress derives the account a mailbox stores the envelope
// dispatched with uniqueMessage in.
func DispatchedMessageAddress(mailboxId, uniqueMessage util.HexAddress) (util.HexAddress, error) {
	dispatched, _, err := identity.FindProgramAddress(types.DispatchedMessageSeeds(uniqueMessage), mailboxId)
	return dispatched, err
}
