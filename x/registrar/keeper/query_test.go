package keeper_test

import (
	"bytes"

	"github.com/celestiaorg/credential-registration/x/registrar/keeper"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (suite *KeeperTestSuite) bindMany(n int) {
	for i := 1; i <= n; i++ {
		payer := bytes.Repeat([]byte{byte(0x10 + i)}, 20)
		err := suite.keeper.Handle(suite.ctx, suite.mailboxId, suite.trustedMessage(body(payer, byte(i))))
		suite.Require().NoError(err)
	}
}

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	suite.bindMany(3)

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(exported.Bindings, 3)
	suite.Require().NoError(exported.Validate())

	suite.SetupTest()
	suite.Require().NoError(suite.keeper.InitGenesis(suite.ctx, exported))

	reexported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(exported, reexported)

	// imported bindings still reject a different owner
	err = suite.keeper.Handle(suite.ctx, suite.mailboxId, suite.trustedMessage(body(bytes.Repeat([]byte{0xee}, 20), 0x01)))
	suite.Require().ErrorIs(err, types.ErrCredentialAlreadyBound)
}

func (suite *KeeperTestSuite) TestInitGenesisRejectsInvalidBindings() {
	suite.bindMany(1)

	exported, err := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(err)

	testCases := []struct {
		name    string
		genesis *types.GenesisState
	}{
		{"duplicate credential", &types.GenesisState{Bindings: append(exported.Bindings, exported.Bindings[0])}},
		{"bad credential", &types.GenesisState{Bindings: []types.Binding{{Credential: "0x1234", Owner: exported.Bindings[0].Owner}}}},
		{"bad owner", &types.GenesisState{Bindings: []types.Binding{{Credential: exported.Bindings[0].Credential, Owner: "not-bech32"}}}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.Require().ErrorIs(suite.keeper.InitGenesis(suite.ctx, tc.genesis), types.ErrInvalidGenesis)
		})
	}

	suite.Require().NoError(types.ValidateGenesis(nil))
	suite.Require().NoError(types.DefaultGenesis().Validate())
}

func (suite *KeeperTestSuite) TestQuerierBinding() {
	querier := keeper.NewQuerier(suite.keeper)
	credential := credentialOf(0x02)

	_, err := querier.Binding(suite.ctx, credential.String())
	suite.Require().Equal(codes.NotFound, status.Code(err))

	_, err = querier.Binding(suite.ctx, "0x1234")
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))

	payer := bytes.Repeat([]byte{0xab}, 20)
	suite.Require().NoError(suite.keeper.Handle(suite.ctx, suite.mailboxId, suite.trustedMessage(body(payer, 0x02))))

	res, err := querier.Binding(suite.ctx, credential.String())
	suite.Require().NoError(err)
	suite.Require().Equal(credential.String(), res.Binding.Credential)
	suite.Require().Equal(sdk.AccAddress(payer).String(), res.Binding.Owner)
}

func (suite *KeeperTestSuite) TestQuerierBindingsPagination() {
	querier := keeper.NewQuerier(suite.keeper)
	suite.bindMany(3)

	res, err := querier.Bindings(suite.ctx, &query.PageRequest{Limit: 2, CountTotal: true})
	suite.Require().NoError(err)
	suite.Require().Len(res.Bindings, 2)
	suite.Require().NotNil(res.Pagination.NextKey)
	suite.Require().EqualValues(3, res.Pagination.Total)
	suite.Require().Equal(credentialOf(0x01).String(), res.Bindings[0].Credential)

	res, err = querier.Bindings(suite.ctx, &query.PageRequest{Key: res.Pagination.NextKey, Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(res.Bindings, 1)
	suite.Require().Equal(credentialOf(0x03).String(), res.Bindings[0].Credential)

	all, err := querier.Bindings(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Require().Len(all.Bindings, 3)

	_, err = querier.Bindings(suite.ctx, &query.PageRequest{Limit: types.MaxPaginationLimit + 1})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestQuerierTrustedOrigin() {
	res, err := keeper.NewQuerier(suite.keeper).TrustedOrigin(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.config.OriginDomain, res.OriginDomain)
	suite.Require().Equal(suite.config.OriginatorProgramId.String(), res.OriginatorProgramId)
}
