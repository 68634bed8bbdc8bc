package response

import (
	"time"

	"haggle-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID                 uuid.UUID `json:"id"`
	ItemID             uuid.UUID `json:"itemId"`
	BuyerID            uuid.UUID `json:"buyerId"`
	SellerID           uuid.UUID `json:"sellerId"`
	Status             string    `json:"status"`
	OriginalPriceCents int64     `json:"originalPriceCents"`
	MinimumPriceCents  int64     `json:"minimumPriceCents"`
	CurrentOfferCents  *int64    `json:"currentOfferCents,omitempty"`
	FinalPriceCents    *int64    `json:"finalPriceCents,omitempty"`
	BuyerMessageCount  int32     `json:"buyerMessageCount"`
	SellerMessageCount int32     `json:"sellerMessageCount"`
	OfferCount         int32     `json:"offerCount"`
	CreatedAt          time.Time `json:"createdAt"`
	LastActivity       time.Time `json:"lastActivity"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

type MessageResponse struct {
	ID              uuid.UUID `json:"id"`
	SessionID       uuid.UUID `json:"sessionId"`
	SenderID        uuid.UUID `json:"senderId"`
	Type            string    `json:"type"`
	Content         string    `json:"content"`
	TemplateID      *string   `json:"templateId,omitempty"`
	PriceOfferCents *int64    `json:"priceOfferCents,omitempty"`
	IsFiltered      bool      `json:"isFiltered"`
	FilteredReason  *string   `json:"filteredReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type SessionDetailResponse struct {
	Session  SessionResponse   `json:"session"`
	Messages []MessageResponse `json:"messages"`
}

type SessionListResponse struct {
	ID                uuid.UUID `json:"id"`
	ItemID            uuid.UUID `json:"itemId"`
	BuyerID           uuid.UUID `json:"buyerId"`
	SellerID          uuid.UUID `json:"sellerId"`
	Status            string    `json:"status"`
	CurrentOfferCents *int64    `json:"currentOfferCents,omitempty"`
	LastActivity      time.Time `json:"lastActivity"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

type ReportResponse struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"sessionId"`
	ReporterID uuid.UUID `json:"reporterId"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromSessionView(rm *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:                 rm.ID,
		ItemID:             rm.ItemID,
		BuyerID:            rm.BuyerID,
		SellerID:           rm.SellerID,
		Status:             rm.Status,
		OriginalPriceCents: rm.OriginalPriceCents,
		MinimumPriceCents:  rm.MinimumPriceCents,
		CurrentOfferCents:  rm.CurrentOfferCents,
		FinalPriceCents:    rm.FinalPriceCents,
		BuyerMessageCount:  rm.BuyerMessageCount,
		SellerMessageCount: rm.SellerMessageCount,
		OfferCount:         rm.OfferCount,
		CreatedAt:          rm.CreatedAt,
		LastActivity:       rm.LastActivity,
		ExpiresAt:          rm.ExpiresAt,
	}
}

func FromMessageView(rm *queries.MessageView) *MessageResponse {
	return &MessageResponse{
		ID:              rm.ID,
		SessionID:       rm.SessionID,
		SenderID:        rm.SenderID,
		Type:            rm.Type,
		Content:         rm.Content,
		TemplateID:      rm.TemplateID,
		PriceOfferCents: rm.PriceOfferCents,
		IsFiltered:      rm.IsFiltered,
		FilteredReason:  rm.FilteredReason,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromSessionDetailView(rm *queries.SessionDetailView) *SessionDetailResponse {
	messages := make([]MessageResponse, len(rm.Messages))
	for i := range rm.Messages {
		messages[i] = *FromMessageView(&rm.Messages[i])
	}
	return &SessionDetailResponse{
		Session:  *FromSessionView(&rm.Session),
		Messages: messages,
	}
}

func FromReportView(rm *queries.ReportView) *ReportResponse {
	return &ReportResponse{
		ID:         rm.ID,
		SessionID:  rm.SessionID,
		ReporterID: rm.ReporterID,
		Reason:     rm.Reason,
		CreatedAt:  rm.CreatedAt,
	}
}

func FromSessionListItem(rm *queries.SessionListItem) *SessionListResponse {
	return &SessionListResponse{
		ID:                rm.ID,
		ItemID:            rm.ItemID,
		BuyerID:           rm.BuyerID,
		SellerID:          rm.SellerID,
		Status:            rm.Status,
		CurrentOfferCents: rm.CurrentOfferCents,
		LastActivity:      rm.LastActivity,
		ExpiresAt:         rm.ExpiresAt,
	}
}
