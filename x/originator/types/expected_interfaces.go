package types

import (
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OutboxAccounts are the accounts an outbound dispatch touches.
type OutboxAccounts struct {
	Outbox            util.HexAddress
	DispatchAuthority util.HexAddress
	SystemProgram     util.HexAddress
	NoopProgram       util.HexAddress
	Payer             util.HexAddress
	UniqueMessage     util.HexAddress
	DispatchedMessage util.HexAddress
}

// OutboxDispatch is the request handed to the mailbox.
type OutboxDispatch struct {
	Accounts          OutboxAccounts
	Sender            util.HexAddress
	DestinationDomain uint32
	Recipient         util.HexAddress
	MessageBody       []byte
	MaxFee            sdk.Coins
}

// ReturnData is what the mailbox hands back after a dispatch. ProgramId names
// the program that produced Data; for a successful dispatch Data holds the
// 32-byte message id.
type ReturnData struct {
	ProgramId util.HexAddress
	Data      []byte
}

// Mailbox is the outbound side of the messaging substrate. The invoker signs
// for its derived dispatch authority with signerSeeds (seeds plus bump).
type Mailbox interface {
	OutboxDispatch(ctx sdk.Context, mailboxId, invoker util.HexAddress, signerSeeds [][]byte, dispatch OutboxDispatch) (ReturnData, error)
}

// HyperlaneKeeper defines the expected hyperlane core keeper interface.
type HyperlaneKeeper interface {
	DispatchMessage(
		ctx sdk.Context,
		originMailboxId util.HexAddress,
		sender util.HexAddress,
		maxFee sdk.Coins,
		destinationDomain uint32,
		recipient util.HexAddress,
		body []byte,
		metadata util.StandardHookMetadata,
		postDispatchHookId *util.HexAddress,
	) (util.HexAddress, error)
}
