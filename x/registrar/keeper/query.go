package keeper

import (
	"context"
	"errors"

	"github.com/celestiaorg/credential-registration/pkg/wire"
	"github.com/celestiaorg/credential-registration/x/registrar/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// QueryBindingResponse is a single credential binding.
type QueryBindingResponse struct {
	Binding types.Binding `json:"binding"`
}

// QueryBindingsResponse is a page of credential bindings.
type QueryBindingsResponse struct {
	Bindings   []types.Binding     `json:"bindings"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryTrustedOriginResponse describes the only origin registrations are
// accepted from.
type QueryTrustedOriginResponse struct {
	OriginDomain        uint32 `json:"origin_domain"`
	OriginatorProgramId string `json:"originator_program_id"`
}

// Querier serves read-only registrar state.
type Querier struct {
	k *Keeper
}

// NewQuerier returns a Querier over keeper.
func NewQuerier(keeper *Keeper) Querier {
	return Querier{k: keeper}
}

// Binding returns the address a credential, written as hex or base58, is
// bound to.
func (q Querier) Binding(ctx context.Context, credential string) (*QueryBindingResponse, error) {
	c, err := wire.ParseCredential(credential)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid credential %q: %v", credential, err)
	}

	owner, err := q.k.GetBinding(ctx, c)
	if err != nil {
		if errors.Is(err, types.ErrBindingNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, err
	}

	return &QueryBindingResponse{Binding: types.NewBinding(c, owner)}, nil
}

// Bindings returns a page of credential bindings in credential order.
func (q Querier) Bindings(ctx context.Context, pageReq *query.PageRequest) (*QueryBindingsResponse, error) {
	if pageReq != nil && pageReq.Limit > types.MaxPaginationLimit {
		return nil, status.Errorf(codes.InvalidArgument, "pagination limit %d exceeds maximum %d", pageReq.Limit, types.MaxPaginationLimit)
	}

	bindings, pageRes, err := query.CollectionPaginate(ctx, q.k.bindings, pageReq, func(credential, owner []byte) (types.Binding, error) {
		return types.Binding{
			Credential: types.EncodeHex(credential),
			Owner:      sdk.AccAddress(owner).String(),
		}, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &QueryBindingsResponse{
		Bindings:   bindings,
		Pagination: pageRes,
	}, nil
}

// TrustedOrigin returns the trusted (origin domain, sender) pair.
func (q Querier) TrustedOrigin(_ context.Context) (*QueryTrustedOriginResponse, error) {
	cfg := q.k.Config()
	return &QueryTrustedOriginResponse{
		OriginDomain:        cfg.OriginDomain,
		OriginatorProgramId: cfg.OriginatorProgramId.String(),
	}, nil
}
