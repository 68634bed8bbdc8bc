//go:build unit || e2e

package builder

import (
	"time"

	domtoken "haggle-service/internal/domain/token"
	reqdto "haggle-service/internal/handler/dto/request"
	"haggle-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenBuilder struct {
	Code                 string
	SessionID            uuid.UUID
	ItemID               uuid.UUID
	BuyerID              uuid.UUID
	SellerID             uuid.UUID
	OriginalPriceCents   int64
	DiscountedPriceCents int64
	IsActive             bool
	IsUsed               bool
	UsedAt               *time.Time
	PurchaseRef          *string
	Now                  time.Time
}

func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{
		Code:                 "HGL-7XK2M9QD",
		SessionID:            uuid.New(),
		ItemID:               uuid.New(),
		BuyerID:              uuid.New(),
		SellerID:             uuid.New(),
		OriginalPriceCents:   10000,
		DiscountedPriceCents: 8500,
		IsActive:             true,
		Now:                  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TokenBuilder) With(mutate func(*TokenBuilder)) *TokenBuilder {
	mutate(b)
	return b
}

func (b *TokenBuilder) BuildDomain() (*domtoken.SettlementToken, error) {
	return domtoken.NewSettlementToken(
		domtoken.Code(b.Code),
		b.SessionID, b.ItemID, b.BuyerID, b.SellerID,
		b.OriginalPriceCents, b.DiscountedPriceCents,
		b.Now,
	)
}

// BuildReconstructed assembles a token in an arbitrary persisted state.
func (b *TokenBuilder) BuildReconstructed() *domtoken.SettlementToken {
	amount := b.OriginalPriceCents - b.DiscountedPriceCents
	percentage := int32(amount * 100 / b.OriginalPriceCents)
	return domtoken.ReconstructSettlementToken(
		uuid.New(), domtoken.Code(b.Code),
		b.SessionID, b.ItemID, b.BuyerID, b.SellerID,
		b.OriginalPriceCents, b.DiscountedPriceCents, amount, percentage,
		b.IsActive, b.IsUsed, b.UsedAt, b.PurchaseRef,
		b.Now, b.Now.Add(domtoken.TokenTTL),
	)
}

func (b *TokenBuilder) BuildValidateRequestDTO() reqdto.ValidateTokenRequest {
	return reqdto.ValidateTokenRequest{
		Code:   b.Code,
		ItemID: b.ItemID,
	}
}

func (b *TokenBuilder) BuildRedeemRequestDTO() reqdto.RedeemTokenRequest {
	return reqdto.RedeemTokenRequest{
		Code:        b.Code,
		PurchaseRef: "order-12345",
	}
}

func (b *TokenBuilder) BuildView() *queries.TokenView {
	amount := b.OriginalPriceCents - b.DiscountedPriceCents
	return &queries.TokenView{
		Code:                 b.Code,
		SessionID:            b.SessionID,
		ItemID:               b.ItemID,
		BuyerID:              b.BuyerID,
		SellerID:             b.SellerID,
		OriginalPriceCents:   b.OriginalPriceCents,
		DiscountedPriceCents: b.DiscountedPriceCents,
		DiscountAmountCents:  amount,
		DiscountPercentage:   int32(amount * 100 / b.OriginalPriceCents),
		IsActive:             b.IsActive,
		IsUsed:               b.IsUsed,
		UsedAt:               b.UsedAt,
		ExpiresAt:            b.Now.Add(domtoken.TokenTTL),
	}
}
