package keeper_test

import (
	"bytes"

	"cosmossdk.io/collections"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	coretypes "github.com/bcp-innovations/hyperlane-cosmos/x/core/types"
	warpkeeper "github.com/bcp-innovations/hyperlane-cosmos/x/warp/keeper"
	"github.com/celestiaorg/credential-registration/x/registrar/keeper"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// mailboxRouter builds the application router the hyperlane core keeper owns.
func (suite *KeeperTestSuite) mailboxRouter() *util.Router[util.HyperlaneApp] {
	sb := collections.NewSchemaBuilder(runtime.NewKVStoreService(suite.coreKey))
	return util.NewRouter[util.HyperlaneApp](coretypes.AppRouterKey, "router_app", sb)
}

// newWarpKeeper builds a real warp keeper. Its constructor registers the
// token types on whatever router coreKeeper.AppRouter returns.
func (suite *KeeperTestSuite) newWarpKeeper(router *util.Router[util.HyperlaneApp]) *warpkeeper.Keeper {
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	authority := sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()

	k := warpkeeper.NewKeeper(
		cdc,
		addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		runtime.NewKVStoreService(suite.warpKey),
		authority,
		nil,
		keeper.FallbackCoreKeeper{Router: router},
		[]int32{1, 2},
	)
	return &k
}

func (suite *KeeperTestSuite) TestRegisterAppRouteRejectsTakenIds() {
	router := suite.mailboxRouter()
	suite.newWarpKeeper(router)

	err := suite.keeper.RegisterAppRoute(router, keeper.WarpModuleIds()...)
	suite.Require().ErrorIs(err, types.ErrRouteAlreadyRegistered)

	// warp keeps its routes
	module, err := router.GetModule(util.GenerateHexAddress([20]byte{}, 1, 0))
	suite.Require().NoError(err)
	_, isRegistrar := (*module).(*keeper.Keeper)
	suite.Require().False(isRegistrar)
}

func (suite *KeeperTestSuite) TestRegisterAppRouteRejectsRepeatedIds() {
	router := suite.mailboxRouter()

	err := suite.keeper.RegisterAppRoute(router, 1, 1)
	suite.Require().ErrorIs(err, types.ErrRouteAlreadyRegistered)
	suite.Require().Empty(router.GetModuleIds())
}

func (suite *KeeperTestSuite) TestRegisterAppRouteInterceptsWarp() {
	mailboxRouter := suite.mailboxRouter()

	fallbackRouter, err := keeper.NewFallbackRouter(runtime.NewKVStoreService(suite.coreKey))
	suite.Require().NoError(err)

	warp := suite.newWarpKeeper(fallbackRouter)
	suite.Require().Equal([]uint32{1, 2}, fallbackRouter.GetModuleIds())

	registrar, err := keeper.NewKeeper(runtime.NewKVStoreService(suite.storeKey), warp, suite.config, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(registrar.RegisterAppRoute(mailboxRouter, keeper.WarpModuleIds()...))
	suite.Require().Equal([]uint32{1, 2}, mailboxRouter.GetModuleIds())

	// token ids allocated by warp come from the mailbox router's sequence
	tokenId, err := fallbackRouter.GetNextSequence(suite.ctx, 1)
	suite.Require().NoError(err)
	next, err := mailboxRouter.GetInternalSequence(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().EqualValues(1, next)

	module, err := mailboxRouter.GetModule(tokenId)
	suite.Require().NoError(err)
	suite.Require().Same(registrar, *module)

	// registrations are bound by the registrar
	suite.recipient = tokenId
	payer := bytes.Repeat([]byte{0xab}, 20)
	suite.Require().NoError((*module).Handle(suite.ctx, suite.mailboxId, suite.trustedMessage(body(payer, 0x02))))
	owner, err := registrar.GetBinding(suite.ctx, credentialOf(0x02))
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.AccAddress(payer), owner)

	// everything else reaches warp, which knows no such token
	untrusted := suite.message(suite.config.OriginDomain+1, suite.config.OriginatorProgramId, body(payer, 0x03))
	err = (*module).Handle(suite.ctx, suite.mailboxId, untrusted)
	suite.Require().ErrorIs(err, collections.ErrNotFound)

	exists, err := (*module).Exists(suite.ctx, tokenId)
	suite.Require().NoError(err)
	suite.Require().False(exists)
}
