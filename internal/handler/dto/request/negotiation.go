package request

import (
	"strings"

	"github.com/google/uuid"
)

type OpenNegotiationRequest struct {
	ItemID             uuid.UUID `json:"item_id" binding:"required"`
	SellerID           uuid.UUID `json:"seller_id" binding:"required"`
	OriginalPriceCents int64     `json:"original_price_cents" binding:"required,gt=0"`
}

type PostMessageRequest struct {
	Type            string  `json:"type" binding:"required"`
	Content         string  `json:"content" binding:"required,max=2000"`
	TemplateID      *string `json:"template_id,omitempty"`
	PriceOfferCents *int64  `json:"price_offer_cents,omitempty" binding:"omitempty,gt=0"`
}

func (r PostMessageRequest) GetTemplateID() *string {
	if r.TemplateID == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.TemplateID)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ReportSessionRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}
