package request

import (
	"github.com/google/uuid"
)

type ValidateTokenRequest struct {
	Code   string    `json:"code" binding:"required,max=20"`
	ItemID uuid.UUID `json:"item_id" binding:"required"`
}

type RedeemTokenRequest struct {
	Code        string `json:"code" binding:"required,max=20"`
	PurchaseRef string `json:"purchase_ref" binding:"required,max=128"`
}
