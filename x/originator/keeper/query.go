package keeper

import (
	"context"
	"errors"

	"github.com/celestiaorg/credential-registration/pkg/identity"
	"github.com/celestiaorg/credential-registration/pkg/trust"
	"github.com/celestiaorg/credential-registration/x/originator/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QueryEnvelopeResponse wraps a recorded envelope.
type QueryEnvelopeResponse struct {
	Envelope types.Envelope `json:"envelope"`
}

// QueryDispatchAuthorityResponse describes the derived dispatch authority.
type QueryDispatchAuthorityResponse struct {
	DispatchAuthority string `json:"dispatch_authority"`
	Bump              uint8  `json:"bump"`
}

// QueryConfigResponse describes the trusted identities of the originator.
type QueryConfigResponse struct {
	Config trust.OriginatorConfig `json:"config"`
}

// Querier serves read-only originator state.
type Querier struct {
	k *Keeper
}

// NewQuerier returns a Querier over keeper.
func NewQuerier(keeper *Keeper) Querier {
	return Querier{k: keeper}
}

// Envelope returns the envelope recorded for a dispatched message account,
// written as hex or base58.
func (q Querier) Envelope(ctx context.Context, dispatchedMessage string) (*QueryEnvelopeResponse, error) {
	addr, err := identity.ParseAddress(dispatchedMessage)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid dispatched message %q: %v", dispatchedMessage, err)
	}

	envelope, err := q.k.GetEnvelope(ctx, addr)
	if err != nil {
		if errors.Is(err, types.ErrEnvelopeNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, err
	}

	return &QueryEnvelopeResponse{Envelope: envelope}, nil
}

// DispatchAuthority returns the keyless identity the originator signs with.
func (q Querier) DispatchAuthority(_ context.Context) (*QueryDispatchAuthorityResponse, error) {
	authority, bump := q.k.DispatchAuthority()
	return &QueryDispatchAuthorityResponse{
		DispatchAuthority: authority.String(),
		Bump:              bump,
	}, nil
}

// Config returns the trust configuration of the keeper.
func (q Querier) Config(_ context.Context) (*QueryConfigResponse, error) {
	return &QueryConfigResponse{Config: q.k.Config()}, nil
}
