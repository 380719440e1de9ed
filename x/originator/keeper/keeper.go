package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/bcp-innovations/hyperlane-cosmos/util"
	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/metrics"
	"github.com/celestiaorg/credential-registration/pkg/trust"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Keeper dispatches credential registrations through the trusted mailbox.
type Keeper struct {
	envelopes collections.Map[[]byte, types.Envelope]
	schema    collections.Schema

	mailbox types.Mailbox
	config  trust.OriginatorConfig
	metrics *metrics.Metrics

	// dispatchAuthority is the keyless identity the originator signs
	// dispatches with, derived once from the configured program id.
	dispatchAuthority util.HexAddress
	authorityBump     uint8
}

// NewKeeper creates and returns a new originator module Keeper. The trust
// configuration is validated here; a zero mailbox or program id is a
// construction error.
func NewKeeper(storeService corestore.KVStoreService, mailbox types.Mailbox, config trust.OriginatorConfig, m *metrics.Metrics) (*Keeper, error) {
	if mailbox == nil {
		return nil, errors.New("mailbox cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	authority, bump, err := identity.FindProgramAddress(types.DispatchAuthoritySeeds(), config.ProgramId)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrUntrustedDispatchAuthority, err.Error())
	}

	sb := collections.NewSchemaBuilder(storeService)
	envelopes := collections.NewMap(sb, types.EnvelopesKeyPrefix, "envelopes", collections.BytesKey, types.EnvelopeValueCodec)

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}

	return &Keeper{
		envelopes:         envelopes,
		schema:            schema,
		mailbox:           mailbox,
		config:            config,
		metrics:           m,
		dispatchAuthority: authority,
		authorityBump:     bump,
	}, nil
}

// Logger returns the module logger extracted using the sdk context.
func (k *Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Config returns the trust configuration the keeper was built with.
func (k *Keeper) Config() trust.OriginatorConfig {
	return k.config
}

// DispatchAuthority returns the derived dispatch authority and its bump.
func (k *Keeper) DispatchAuthority() (util.HexAddress, uint8) {
	return k.dispatchAuthority, k.authorityBump
}

// GetEnvelope returns the envelope recorded for a dispatched message account.
func (k *Keeper) GetEnvelope(ctx context.Context, dispatchedMessage util.HexAddress) (types.Envelope, error) {
	envelope, err := k.envelopes.Get(ctx, dispatchedMessage.Bytes())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Envelope{}, errorsmod.Wrapf(types.ErrEnvelopeNotFound, "dispatched message %s", dispatchedMessage)
		}
		return types.Envelope{}, err
	}
	return envelope, nil
}
