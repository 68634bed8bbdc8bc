package response

import (
	"time"

	"haggle-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenResponse struct {
	Code                 string     `json:"code"`
	SessionID            uuid.UUID  `json:"sessionId"`
	ItemID               uuid.UUID  `json:"itemId"`
	BuyerID              uuid.UUID  `json:"buyerId"`
	SellerID             uuid.UUID  `json:"sellerId"`
	OriginalPriceCents   int64      `json:"originalPriceCents"`
	DiscountedPriceCents int64      `json:"discountedPriceCents"`
	DiscountAmountCents  int64      `json:"discountAmountCents"`
	DiscountPercentage   int32      `json:"discountPercentage"`
	IsActive             bool       `json:"isActive"`
	IsUsed               bool       `json:"isUsed"`
	UsedAt               *time.Time `json:"usedAt,omitempty"`
	ExpiresAt            time.Time  `json:"expiresAt"`
}

type ValidationResponse struct {
	Valid  bool           `json:"valid"`
	Reason string         `json:"reason,omitempty"`
	Token  *TokenResponse `json:"token,omitempty"`
}

func FromTokenView(rm *queries.TokenView) *TokenResponse {
	return &TokenResponse{
		Code:                 rm.Code,
		SessionID:            rm.SessionID,
		ItemID:               rm.ItemID,
		BuyerID:              rm.BuyerID,
		SellerID:             rm.SellerID,
		OriginalPriceCents:   rm.OriginalPriceCents,
		DiscountedPriceCents: rm.DiscountedPriceCents,
		DiscountAmountCents:  rm.DiscountAmountCents,
		DiscountPercentage:   rm.DiscountPercentage,
		IsActive:             rm.IsActive,
		IsUsed:               rm.IsUsed,
		UsedAt:               rm.UsedAt,
		ExpiresAt:            rm.ExpiresAt,
	}
}

func FromValidationResult(rm *queries.ValidationResult) *ValidationResponse {
	resp := &ValidationResponse{
		Valid:  rm.Valid,
		Reason: rm.Reason,
	}
	if rm.Token != nil {
		resp.Token = FromTokenView(rm.Token)
	}
	return resp
}
