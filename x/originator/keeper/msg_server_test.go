package keeper_test

import (
	"cosmossdk.io/math"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/x/originator/keeper"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (suite *KeeperTestSuite) msgRegister(unique uint64) *types.MsgRegister {
	accounts := suite.accounts(unique)
	return &types.MsgRegister{
		Signer:             suite.payer.String(),
		Mailbox:            identity.Base58(accounts.Mailbox),
		Outbox:             accounts.Outbox.String(),
		DispatchAuthority:  accounts.DispatchAuthority.String(),
		SystemProgram:      identity.Base58(accounts.SystemProgram),
		NoopProgram:        identity.Base58(accounts.NoopProgram),
		UniqueMessage:      accounts.UniqueMessage.String(),
		DispatchedMessage:  accounts.DispatchedMessage.String(),
		DestinationDomain:  69420,
		EmbeddedCredential: suite.credential.String(),
		Recipient:          hexRecipient,
	}
}

func (suite *KeeperTestSuite) TestMsgServerRegister() {
	msgServer := keeper.NewMsgServerImpl(suite.keeper)

	res, err := msgServer.Register(suite.ctx, suite.msgRegister(1))
	suite.Require().NoError(err)

	messageId, err := util.DecodeHexAddress(res.MessageId)
	suite.Require().NoError(err)
	suite.Require().False(messageId.IsZeroAddress())

	// the payer is the signer, left padded to 32 bytes
	body := suite.coreKeeper.calls[0].body
	suite.Require().Equal(make([]byte, 12), body[:12])
	suite.Require().Equal(suite.payer.Bytes(), body[12:32])
}

func (suite *KeeperTestSuite) TestMsgServerRegisterValidation() {
	msgServer := keeper.NewMsgServerImpl(suite.keeper)

	testCases := []struct {
		name   string
		mutate func(*types.MsgRegister)
		expErr error
	}{
		{
			name:   "invalid signer",
			mutate: func(msg *types.MsgRegister) { msg.Signer = "not-bech32" },
			expErr: types.ErrInvalidPayer,
		},
		{
			name:   "invalid credential",
			mutate: func(msg *types.MsgRegister) { msg.EmbeddedCredential = "0x1234" },
			expErr: types.ErrInvalidInstruction,
		},
		{
			name:   "invalid account encoding",
			mutate: func(msg *types.MsgRegister) { msg.Outbox = "abc123" },
			expErr: types.ErrInvalidInstruction,
		},
		{
			name:   "invalid max fee",
			mutate: func(msg *types.MsgRegister) { msg.MaxFee = sdk.Coins{sdk.Coin{Denom: "", Amount: math.NewInt(1)}} },
			expErr: types.ErrInvalidInstruction,
		},
		{
			name:   "malformed recipient",
			mutate: func(msg *types.MsgRegister) { msg.Recipient = "abc123" },
			expErr: types.ErrInvalidRecipientEncoding,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			msg := suite.msgRegister(1)
			tc.mutate(msg)

			_, err := msgServer.Register(suite.ctx, msg)
			suite.Require().ErrorIs(err, tc.expErr)
		})
	}

	suite.Require().Empty(suite.coreKeeper.calls)
}

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	for i := uint64(1); i <= 3; i++ {
		_, err := suite.keeper.Register(suite.ctx, suite.accounts(i), suite.registerMessage(hexRecipient), nil)
		suite.Require().NoError(err)
	}

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(exported.Envelopes, 3)
	suite.Require().NoError(exported.Validate())

	suite.SetupTest()
	suite.Require().NoError(suite.keeper.InitGenesis(suite.ctx, exported))

	reexported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(exported, reexported)

	// imported envelopes still block reuse of their unique accounts
	_, err = suite.keeper.Register(suite.ctx, suite.accounts(2), suite.registerMessage(hexRecipient), nil)
	suite.Require().ErrorIs(err, types.ErrDuplicateUniqueAccount)
}

func (suite *KeeperTestSuite) TestInitGenesisRejectsDuplicates() {
	_, err := suite.keeper.Register(suite.ctx, suite.accounts(1), suite.registerMessage(hexRecipient), nil)
	suite.Require().NoError(err)

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)

	duplicated := &types.GenesisState{Envelopes: append(exported.Envelopes, exported.Envelopes[0])}
	suite.Require().ErrorIs(duplicated.Validate(), types.ErrInvalidGenesis)

	suite.SetupTest()
	suite.Require().ErrorIs(suite.keeper.InitGenesis(suite.ctx, duplicated), types.ErrInvalidGenesis)
}

func (suite *KeeperTestSuite) TestQuerier() {
	querier := keeper.NewQuerier(suite.keeper)
	accounts := suite.accounts(1)

	_, err := querier.Envelope(suite.ctx, accounts.DispatchedMessage.String())
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = querier.Envelope(suite.ctx, "abc123")
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))

	messageId, err := suite.keeper.Register(suite.ctx, accounts, suite.registerMessage(hexRecipient), nil)
	suite.Require().NoError(err)

	res, err := querier.Envelope(suite.ctx, identity.Base58(accounts.DispatchedMessage))
	suite.Require().NoError(err)
	suite.Require().Equal(messageId.String(), res.Envelope.MessageId)

	authority, err := querier.DispatchAuthority(suite.ctx)
	suite.Require().NoError(err)
	expected, bump := suite.keeper.DispatchAuthority()
	suite.Require().Equal(expected.String(), authority.DispatchAuthority)
	suite.Require().Equal(bump, authority.Bump)

	cfg, err := querier.Config(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.config, cfg.Config)
}
