package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/metrics"
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProcessInstruction is the raw entrypoint: it decodes instruction bytes and
// a positional account list and runs Register.
func (k *Keeper) ProcessInstruction(ctx sdk.Context, accounts []util.HexAddress, data []byte) (util.HexAddress, error) {
	msg, err := wire.UnmarshalInstruction(data)
	if err != nil {
		k.metrics.Dispatch(metrics.OutcomeRejected)
		return util.HexAddress{}, errorsmod.Wrap(types.ErrInvalidInstruction, err.Error())
	}

	accs, err := types.AccountsFromList(accounts)
	if err != nil {
		k.metrics.Dispatch(metrics.OutcomeRejected)
		return util.HexAddress{}, err
	}

	return k.Register(ctx, accs, msg, nil)
}

// Register dispatches a registration body (payer || credential) to the
// recipient on the destination domain and returns the message id reported
// by the mailbox. Every caller supplied account is checked before the
// mailbox is invoked; on any error nothing is recorded.
func (k *Keeper) Register(ctx sdk.Context, accounts types.Accounts, msg wire.RegisterMessage, maxFee sdk.Coins) (util.HexAddress, error) {
	recipient, err := k.checkPreconditions(ctx, accounts, msg)
	if err != nil {
		k.metrics.Dispatch(metrics.OutcomeRejected)
		return util.HexAddress{}, err
	}

	dispatch := types.OutboxDispatch{
		Accounts:          accounts.OutboxAccounts(),
		Sender:            k.config.ProgramId,
		DestinationDomain: msg.Destination,
		Recipient:         recipient,
		MessageBody:       wire.EncodeBody(accounts.Payer, msg.EmbeddedCredential),
		MaxFee:            maxFee,
	}

	signerSeeds := types.DispatchAuthoritySignerSeeds(k.authorityBump)
	ret, err := k.mailbox.OutboxDispatch(ctx, accounts.Mailbox, k.config.ProgramId, signerSeeds, dispatch)
	if err != nil {
		k.metrics.Dispatch(metrics.OutcomeRejected)
		return util.HexAddress{}, err
	}

	messageId, err := k.checkReturnData(ctx, accounts.Mailbox, ret)
	if err != nil {
		return util.HexAddress{}, err
	}

	envelope := types.NewEnvelope(messageId, accounts, msg.EmbeddedCredential, msg.Destination, recipient)
	if err := k.envelopes.Set(ctx, accounts.DispatchedMessage.Bytes(), envelope); err != nil {
		return util.HexAddress{}, err
	}

	EmitRegisterEvent(ctx, envelope)
	k.metrics.Dispatch(metrics.OutcomeDispatched)

	k.Logger(ctx).Info("dispatched registration",
		"message_id", envelope.MessageId,
		"destination", msg.Destination,
		"credential", envelope.Credential,
	)

	return messageId, nil
}

// checkPreconditions validates the caller supplied accounts and resolves the
// recipient. Checks run in a fixed order: mailbox, dispatch authority,
// system accounts, recipient, payer, unique message.
func (k *Keeper) checkPreconditions(ctx sdk.Context, accounts types.Accounts, msg wire.RegisterMessage) (util.HexAddress, error) {
	if accounts.Mailbox != k.config.MailboxId {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrUntrustedMessagingProgram, "expected mailbox %s, got %s", k.config.MailboxId, accounts.Mailbox)
	}

	if accounts.DispatchAuthority != k.dispatchAuthority {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrUntrustedDispatchAuthority, "expected %s, got %s", k.dispatchAuthority, accounts.DispatchAuthority)
	}

	if accounts.SystemProgram != k.config.SystemProgramId {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrUntrustedSystemAccount, "system program %s", accounts.SystemProgram)
	}
	if accounts.NoopProgram != k.config.NoopProgramId {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrUntrustedSystemAccount, "noop program %s", accounts.NoopProgram)
	}

	recipient, err := identity.ParseAddress(msg.Recipient)
	if err != nil {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrInvalidRecipientEncoding, "%q: %s", msg.Recipient, err)
	}

	if accounts.Payer.IsZeroAddress() {
		return util.HexAddress{}, errorsmod.Wrap(types.ErrInvalidPayer, "payer is the zero identity")
	}

	if accounts.UniqueMessage.IsZeroAddress() {
		return util.HexAddress{}, errorsmod.Wrap(types.ErrDuplicateUniqueAccount, "unique message account is the zero identity")
	}
	used, err := k.envelopes.Has(ctx, accounts.DispatchedMessage.Bytes())
	if err != nil {
		return util.HexAddress{}, err
	}
	if used {
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrDuplicateUniqueAccount, "dispatched message %s already recorded", accounts.DispatchedMessage)
	}

	return recipient, nil
}

// checkReturnData verifies the return data came from the mailbox that was
// invoked and carries exactly one message id.
func (k *Keeper) checkReturnData(ctx sdk.Context, mailbox util.HexAddress, ret types.ReturnData) (util.HexAddress, error) {
	if ret.ProgramId != mailbox {
		k.metrics.Dispatch(metrics.OutcomeRejected)
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrUntrustedMessagingProgram, "return data produced by %s, expected %s", ret.ProgramId, mailbox)
	}

	if len(ret.Data) != len(util.HexAddress{}) {
		k.metrics.Dispatch(metrics.OutcomeMalformed)
		k.Logger(ctx).Error("mailbox returned malformed message id",
			"mailbox", mailbox.String(),
			"length", len(ret.Data),
		)
		return util.HexAddress{}, errorsmod.Wrapf(types.ErrMalformedSubstrateResponse, "expected %d bytes of return data, got %d", len(util.HexAddress{}), len(ret.Data))
	}

	var messageId util.HexAddress
	copy(messageId[:], ret.Data)
	return messageId, nil
}
