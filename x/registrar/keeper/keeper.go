package keeper

import (
	"bytes"
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
	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ util.HyperlaneApp = (*Keeper)(nil)

// Keeper intercepts inbound hyperlane messages. Messages from the trusted
// originator bind a credential to the payer's address; everything else is
// handed to the fallback application untouched.
type Keeper struct {
	bindings collections.Map[[]byte, []byte]
	schema   collections.Schema

	fallback util.HyperlaneApp
	config   trust.RegistrarConfig
	metrics  *metrics.Metrics
}

// NewKeeper creates and returns a new registrar module Keeper. An unset
// trusted origin is a construction error.
func NewKeeper(storeService corestore.KVStoreService, fallback util.HyperlaneApp, config trust.RegistrarConfig, m *metrics.Metrics) (*Keeper, error) {
	if fallback == nil {
		return nil, errors.New("fallback application cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sb := collections.NewSchemaBuilder(storeService)
	bindings := collections.NewMap(sb, types.BindingsKeyPrefix, "bindings", collections.BytesKey, collections.BytesValue)

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}

	return &Keeper{
		bindings: bindings,
		schema:   schema,
		fallback: fallback,
		config:   config,
		metrics:  m,
	}, nil
}

// Logger returns the module logger extracted using the sdk context.
func (k *Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Config returns the trusted origin the keeper was built with.
func (k *Keeper) Config() trust.RegistrarConfig {
	return k.config
}

// ShouldHandle reports whether a message from origin and sender is a
// registration. Both the domain and the sender have to match.
func (k *Keeper) ShouldHandle(origin uint32, sender util.HexAddress) bool {
	return origin == k.config.OriginDomain && sender == k.config.OriginatorProgramId
}

// Handle implements util.HyperlaneApp.
func (k *Keeper) Handle(ctx context.Context, mailboxId util.HexAddress, message util.HyperlaneMessage) error {
	if !k.ShouldHandle(message.Origin, message.Sender) {
		k.metrics.Binding(metrics.OutcomeForwarded)
		return k.fallback.Handle(ctx, mailboxId, message)
	}

	messageId := message.Id()
	if err := k.handleRegistration(ctx, message.Origin, message.Sender, &messageId, message.Body); err != nil {
		return err
	}

	k.Logger(ctx).Debug("handled registration", "message_id", messageId.String())
	return nil
}

// Exists implements util.HyperlaneApp by deferring to the fallback.
func (k *Keeper) Exists(ctx context.Context, recipient util.HexAddress) (bool, error) {
	return k.fallback.Exists(ctx, recipient)
}

// ReceiverIsmId implements util.HyperlaneApp by deferring to the fallback. A
// nil id makes the mailbox use its default ISM.
func (k *Keeper) ReceiverIsmId(ctx context.Context, recipient util.HexAddress) (*util.HexAddress, error) {
	return k.fallback.ReceiverIsmId(ctx, recipient)
}

// HandleMessage processes a registration from the trusted originator: the
// body is decoded into payer and credential and the credential is bound to
// the payer's address. The recipient is not interpreted.
func (k *Keeper) HandleMessage(ctx context.Context, origin uint32, sender, _ util.HexAddress, body []byte) error {
	return k.handleRegistration(ctx, origin, sender, nil, body)
}

func (k *Keeper) handleRegistration(ctx context.Context, origin uint32, sender util.HexAddress, messageId *util.HexAddress, body []byte) error {
	if !k.ShouldHandle(origin, sender) {
		return errorsmod.Wrapf(types.ErrUntrustedOrigin, "origin %d sender %s", origin, sender)
	}

	decoded, err := wire.DecodeBody(body)
	if err != nil {
		k.metrics.Binding(metrics.OutcomeInvalid)
		return errorsmod.Wrap(types.ErrMalformedMessageBody, err.Error())
	}

	owner, err := identity.ToAccAddress(decoded.Payer)
	if err != nil {
		k.metrics.Binding(metrics.OutcomeInvalid)
		return errorsmod.Wrap(types.ErrInvalidAddressEncoding, err.Error())
	}

	created, err := k.bind(ctx, decoded.Credential, owner)
	if err != nil {
		if errors.Is(err, types.ErrCredentialAlreadyBound) {
			k.metrics.Binding(metrics.OutcomeConflict)
		}
		return err
	}

	if !created {
		k.metrics.Binding(metrics.OutcomeExisting)
		k.Logger(ctx).Debug("credential already bound to owner", "credential", decoded.Credential.String(), "owner", owner.String())
		return nil
	}

	EmitCredentialBoundEvent(sdk.UnwrapSDKContext(ctx), decoded.Credential, owner, origin, messageId)
	k.metrics.Binding(metrics.OutcomeCreated)
	k.Logger(ctx).Info("bound credential", "credential", decoded.Credential.String(), "owner", owner.String())

	return nil
}

// bind records credential -> owner. A credential bound to owner already is
// a no-op; one bound to anyone else is rejected and left unchanged.
func (k *Keeper) bind(ctx context.Context, credential wire.Credential, owner sdk.AccAddress) (bool, error) {
	existing, err := k.bindings.Get(ctx, credential.Bytes())
	switch {
	case err == nil:
		if bytes.Equal(existing, owner) {
			return false, nil
		}
		return false, errorsmod.Wrapf(types.ErrCredentialAlreadyBound, "credential %s", credential)
	case !errors.Is(err, collections.ErrNotFound):
		return false, err
	}

	if err := k.bindings.Set(ctx, credential.Bytes(), owner.Bytes()); err != nil {
		return false, err
	}
	return true, nil
}

// GetBinding returns the address a credential is bound to.
func (k *Keeper) GetBinding(ctx context.Context, credential wire.Credential) (sdk.AccAddress, error) {
	owner, err := k.bindings.Get(ctx, credential.Bytes())
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, errorsmod.Wrapf(types.ErrBindingNotFound, "credential %s", credential)
		}
		return nil, err
	}
	return sdk.AccAddress(owner), nil
}
