package queries

import (
	"time"

	"github.com/google/uuid"
)

type SessionView struct {
	ID                 uuid.UUID
	ItemID             uuid.UUID
	BuyerID            uuid.UUID
	SellerID           uuid.UUID
	Status             string
	OriginalPriceCents int64
	MinimumPriceCents  int64
	CurrentOfferCents  *int64
	FinalPriceCents    *int64
	BuyerMessageCount  int32
	SellerMessageCount int32
	OfferCount         int32
	IsBlocked          bool
	CreatedAt          time.Time
	LastActivity       time.Time
	ExpiresAt          time.Time
}

type MessageView struct {
	ID              uuid.UUID
	SessionID       uuid.UUID
	SenderID        uuid.UUID
	Type            string
	Content         string
	TemplateID      *string
	PriceOfferCents *int64
	IsFiltered      bool
	FilteredReason  *string
	CreatedAt       time.Time
}

type SessionDetailView struct {
	Session  SessionView
	Messages []MessageView
}

type SessionListItem struct {
	ID                uuid.UUID
	ItemID            uuid.UUID
	BuyerID           uuid.UUID
	SellerID          uuid.UUID
	Status            string
	CurrentOfferCents *int64
	LastActivity      time.Time
	ExpiresAt         time.Time
}

type ReportView struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	ReporterID uuid.UUID
	Reason     string
	CreatedAt  time.Time
}

type TokenView struct {
	Code                 string
	SessionID            uuid.UUID
	ItemID               uuid.UUID
	BuyerID              uuid.UUID
	SellerID             uuid.UUID
	OriginalPriceCents   int64
	DiscountedPriceCents int64
	DiscountAmountCents  int64
	DiscountPercentage   int32
	IsActive             bool
	IsUsed               bool
	UsedAt               *time.Time
	ExpiresAt            time.Time
}

type ValidationResult struct {
	Valid  bool
	Reason string
	Token  *TokenView
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
