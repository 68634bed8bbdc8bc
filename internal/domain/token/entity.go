package token

import (
	"math"
	"time"

	"haggle-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrices = errs.New("invalid token prices")
)

// TokenTTL bounds redemption independently of the session's own window.
const TokenTTL = 48 * time.Hour

// SettlementToken is the single-use redemption artifact minted when a
// negotiation is accepted. Tokens are never deleted; a redeemed token stays
// on record as the audit trail.
type SettlementToken struct {
	id                   uuid.UUID
	code                 Code
	sessionID            uuid.UUID
	itemID               uuid.UUID
	buyerID              uuid.UUID
	sellerID             uuid.UUID
	originalPriceCents   int64
	discountedPriceCents int64
	discountAmountCents  int64
	discountPercentage   int32
	isActive             bool
	isUsed               bool
	usedAt               *time.Time
	purchaseRef          *string
	createdAt            time.Time
	expiresAt            time.Time
}

func NewSettlementToken(
	code Code,
	sessionID, itemID, buyerID, sellerID uuid.UUID,
	originalPriceCents, discountedPriceCents int64,
	now time.Time,
) (*SettlementToken, error) {
	if originalPriceCents <= 0 || discountedPriceCents <= 0 || discountedPriceCents > originalPriceCents {
		return nil, ErrInvalidPrices
	}

	amount := originalPriceCents - discountedPriceCents
	percentage := int32(math.Round(float64(amount) / float64(originalPriceCents) * 100))

	return &SettlementToken{
		id:                   uuid.New(),
		code:                 code,
		sessionID:            sessionID,
		itemID:               itemID,
		buyerID:              buyerID,
		sellerID:             sellerID,
		originalPriceCents:   originalPriceCents,
		discountedPriceCents: discountedPriceCents,
		discountAmountCents:  amount,
		discountPercentage:   percentage,
		isActive:             true,
		isUsed:               false,
		createdAt:            now,
		expiresAt:            now.Add(TokenTTL),
	}, nil
}

func ReconstructSettlementToken(
	id uuid.UUID,
	code Code,
	sessionID, itemID, buyerID, sellerID uuid.UUID,
	originalPriceCents, discountedPriceCents, discountAmountCents int64,
	discountPercentage int32,
	isActive, isUsed bool,
	usedAt *time.Time,
	purchaseRef *string,
	createdAt, expiresAt time.Time,
) *SettlementToken {
	return &SettlementToken{
		id:                   id,
		code:                 code,
		sessionID:            sessionID,
		itemID:               itemID,
		buyerID:              buyerID,
		sellerID:             sellerID,
		originalPriceCents:   originalPriceCents,
		discountedPriceCents: discountedPriceCents,
		discountAmountCents:  discountAmountCents,
		discountPercentage:   discountPercentage,
		isActive:             isActive,
		isUsed:               isUsed,
		usedAt:               usedAt,
		purchaseRef:          purchaseRef,
		createdAt:            createdAt,
		expiresAt:            expiresAt,
	}
}

func (t *SettlementToken) IsExpiredAt(now time.Time) bool {
	return now.After(t.expiresAt)
}

// IsRedeemableBy checks every redemption precondition at once. Callers expose
// only a generic failure reason: reporting which check failed would make
// code enumeration easier.
func (t *SettlementToken) IsRedeemableBy(buyerID, itemID uuid.UUID, now time.Time) bool {
	if t.buyerID != buyerID || t.itemID != itemID {
		return false
	}
	if !t.isActive || t.isUsed {
		return false
	}
	return !t.IsExpiredAt(now)
}

func (t *SettlementToken) ID() uuid.UUID               { return t.id }
func (t *SettlementToken) Code() Code                  { return t.code }
func (t *SettlementToken) SessionID() uuid.UUID        { return t.sessionID }
func (t *SettlementToken) ItemID() uuid.UUID           { return t.itemID }
func (t *SettlementToken) BuyerID() uuid.UUID          { return t.buyerID }
func (t *SettlementToken) SellerID() uuid.UUID         { return t.sellerID }
func (t *SettlementToken) OriginalPriceCents() int64   { return t.originalPriceCents }
func (t *SettlementToken) DiscountedPriceCents() int64 { return t.discountedPriceCents }
func (t *SettlementToken) DiscountAmountCents() int64  { return t.discountAmountCents }
func (t *SettlementToken) DiscountPercentage() int32   { return t.discountPercentage }
func (t *SettlementToken) IsActive() bool              { return t.isActive }
func (t *SettlementToken) IsUsed() bool                { return t.isUsed }
func (t *SettlementToken) UsedAt() *time.Time          { return t.usedAt }
func (t *SettlementToken) PurchaseRef() *string        { return t.purchaseRef }
func (t *SettlementToken) CreatedAt() time.Time        { return t.createdAt }
func (t *SettlementToken) ExpiresAt() time.Time        { return t.expiresAt }
