package keeper

import (
	"slices"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	coretypes "github.com/bcp-innovations/hyperlane-cosmos/x/core/types"
	warptypes "github.com/bcp-innovations/hyperlane-cosmos/x/warp/types"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
)

// appRouterName is the name the hyperlane core keeper gives its application
// router. Ids allocated by a router embed its name.
const appRouterName = "router_app"

// Routing inbound messages through the registrar takes three steps, in order:
//
//  1. NewFallbackRouter over the hyperlane core store service.
//  2. Build the warp keeper with a FallbackCoreKeeper, so that warp registers
//     its token types on the fallback router instead of the mailbox router.
//  3. Build the registrar with the warp keeper as fallback and call
//     RegisterAppRoute on the core keeper's AppRouter with warp's token types.
//
// The mailbox then delivers warp-addressed messages to the registrar, which
// hands everything that is not a registration to warp.

// NewFallbackRouter returns the router the fallback application registers on.
// It shares the allocation sequence of the core application router, so ids the
// fallback allocates through it are the ones the mailbox would have handed out.
func NewFallbackRouter(coreStoreService corestore.KVStoreService) (*util.Router[util.HyperlaneApp], error) {
	sb := collections.NewSchemaBuilder(coreStoreService)
	router := util.NewRouter[util.HyperlaneApp](coretypes.AppRouterKey, appRouterName, sb)
	if _, err := sb.Build(); err != nil {
		return nil, err
	}
	return router, nil
}

// FallbackCoreKeeper is handed to the warp keeper constructor in place of the
// hyperlane core keeper. Every call goes to the core keeper except AppRouter,
// which returns the fallback router.
type FallbackCoreKeeper struct {
	warptypes.CoreKeeper

	Router *util.Router[util.HyperlaneApp]
}

var _ warptypes.CoreKeeper = FallbackCoreKeeper{}

// AppRouter returns the fallback router.
func (k FallbackCoreKeeper) AppRouter() *util.Router[util.HyperlaneApp] {
	return k.Router
}

// WarpModuleIds are the application module ids the warp keeper registers.
func WarpModuleIds() []uint8 {
	return []uint8{
		uint8(warptypes.HYP_TOKEN_TYPE_COLLATERAL),
		uint8(warptypes.HYP_TOKEN_TYPE_SYNTHETIC),
	}
}

// RegisterAppRoute installs the registrar in the mailbox application router
// under each of moduleIds. The ids must still be free: an id the fallback
// already registered on that router is rejected before anything is installed.
func (k *Keeper) RegisterAppRoute(router types.AppRouter, moduleIds ...uint8) error {
	registered := router.GetModuleIds()
	for _, id := range moduleIds {
		if slices.Contains(registered, uint32(id)) {
			return errorsmod.Wrapf(types.ErrRouteAlreadyRegistered, "module id %d; build the fallback with FallbackCoreKeeper", id)
		}
		registered = append(registered, uint32(id))
	}

	for _, id := range moduleIds {
		router.RegisterModule(id, k)
	}
	return nil
}
