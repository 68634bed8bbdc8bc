package queries

import (
	"context"

	"haggle-service/internal/domain/token"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// InvalidCodeReason is deliberately generic: reporting which check failed
// would make code enumeration easier.
const InvalidCodeReason = "this code cannot be applied to this purchase"

type TokenReadStore interface {
	FindByCode(ctx context.Context, code string) (*token.SettlementToken, error)
	FindBySession(ctx context.Context, sessionID uuid.UUID) (*token.SettlementToken, error)
}

type TokenQueries interface {
	Validate(ctx context.Context, code string, buyerID, itemID uuid.UUID) (*ValidationResult, error)
	GetBySession(ctx context.Context, sessionID, viewerID uuid.UUID) (*TokenView, error)
}

type tokenQueriesImpl struct {
	store TokenReadStore
	clock clock.Clock
}

func NewTokenQueries(store TokenReadStore, clock clock.Clock) TokenQueries {
	return &tokenQueriesImpl{store: store, clock: clock}
}

// Validate checks code existence, buyer/item binding, active and unused
// flags, and expiry. Any single failure yields the same generic reason.
func (q *tokenQueriesImpl) Validate(ctx context.Context, code string, buyerID, itemID uuid.UUID) (*ValidationResult, error) {
	invalid := &ValidationResult{Valid: false, Reason: InvalidCodeReason}

	parsed, err := token.NewCode(code)
	if err != nil {
		return invalid, nil
	}

	t, err := q.store.FindByCode(ctx, parsed.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invalid, nil
		}
		return nil, err
	}

	if !t.IsRedeemableBy(buyerID, itemID, q.clock.Now()) {
		return invalid, nil
	}

	view := ToTokenView(t)
	return &ValidationResult{Valid: true, Token: &view}, nil
}

func (q *tokenQueriesImpl) GetBySession(ctx context.Context, sessionID, viewerID uuid.UUID) (*TokenView, error) {
	t, err := q.store.FindBySession(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTokenNotFound
		}
		return nil, err
	}

	if viewerID != t.BuyerID() && viewerID != t.SellerID() {
		return nil, errs.ErrNotAuthorized
	}

	view := ToTokenView(t)
	return &view, nil
}

func ToTokenView(t *token.SettlementToken) TokenView {
	return TokenView{
		Code:                 t.Code().String(),
		SessionID:            t.SessionID(),
		ItemID:               t.ItemID(),
		BuyerID:              t.BuyerID(),
		SellerID:             t.SellerID(),
		OriginalPriceCents:   t.OriginalPriceCents(),
		DiscountedPriceCents: t.DiscountedPriceCents(),
		DiscountAmountCents:  t.DiscountAmountCents(),
		DiscountPercentage:   t.DiscountPercentage(),
		IsActive:             t.IsActive(),
		IsUsed:               t.IsUsed(),
		UsedAt:               t.UsedAt(),
		ExpiresAt:            t.ExpiresAt(),
	}
}
