//go:build unit || e2e

package builder

import (
	"time"

	domneg "haggle-service/internal/domain/negotiation"
	reqdto "haggle-service/internal/handler/dto/request"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/ptr"
	"haggle-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID                 uuid.UUID
	ItemID             uuid.UUID
	BuyerID            uuid.UUID
	SellerID           uuid.UUID
	Status             domneg.Status
	OriginalPriceCents int64
	CurrentOfferCents  *int64
	FinalPriceCents    *int64
	IsBlocked          bool
	Now                time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:                 uuid.New(),
		ItemID:             uuid.New(),
		BuyerID:            uuid.New(),
		SellerID:           uuid.New(),
		Status:             domneg.StatusActive,
		OriginalPriceCents: 10000,
		Now:                time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithOffer(cents int64) *SessionBuilder {
	b.CurrentOfferCents = ptr.To(cents)
	return b
}

func (b *SessionBuilder) WithStatus(status domneg.Status) *SessionBuilder {
	b.Status = status
	return b
}

// Services returns domain services pinned to the builder's clock.
func (b *SessionBuilder) Services() (*domneg.Services, *clock.MockClock) {
	mock := clock.NewMockClock(b.Now)
	return &domneg.Services{
		Clock:   mock,
		Filter:  domneg.NewContentFilter(),
		Limiter: domneg.NewRateLimiter(),
	}, mock
}

func (b *SessionBuilder) BuildDomain() (*domneg.Session, error) {
	services, _ := b.Services()
	return domneg.NewSession(services, b.ItemID, b.BuyerID, b.SellerID, b.OriginalPriceCents)
}

// BuildReconstructed assembles a session in an arbitrary persisted state,
// bypassing the NewSession invariants.
func (b *SessionBuilder) BuildReconstructed() *domneg.Session {
	return domneg.ReconstructSession(
		b.ID, b.ItemID, b.BuyerID, b.SellerID,
		b.Status,
		b.OriginalPriceCents, domneg.MinimumPriceCents(b.OriginalPriceCents),
		b.CurrentOfferCents, b.FinalPriceCents,
		0, 0, 0,
		nil, nil,
		b.IsBlocked,
		b.Now, b.Now, b.Now.Add(domneg.SessionTTL),
		1,
	)
}

func (b *SessionBuilder) BuildOpenRequestDTO() reqdto.OpenNegotiationRequest {
	return reqdto.OpenNegotiationRequest{
		ItemID:             b.ItemID,
		SellerID:           b.SellerID,
		OriginalPriceCents: b.OriginalPriceCents,
	}
}

func (b *SessionBuilder) BuildPostMessageRequestDTO() reqdto.PostMessageRequest {
	return reqdto.PostMessageRequest{
		Type:    domneg.MessageTypeTemplate.String(),
		Content: "Is the price negotiable?",
	}
}

func (b *SessionBuilder) BuildView() *queries.SessionView {
	return &queries.SessionView{
		ID:                 b.ID,
		ItemID:             b.ItemID,
		BuyerID:            b.BuyerID,
		SellerID:           b.SellerID,
		Status:             b.Status.String(),
		OriginalPriceCents: b.OriginalPriceCents,
		MinimumPriceCents:  domneg.MinimumPriceCents(b.OriginalPriceCents),
		CurrentOfferCents:  b.CurrentOfferCents,
		FinalPriceCents:    b.FinalPriceCents,
		IsBlocked:          b.IsBlocked,
		CreatedAt:          b.Now,
		LastActivity:       b.Now,
		ExpiresAt:          b.Now.Add(domneg.SessionTTL),
	}
}

func (b *SessionBuilder) BuildListItem() *queries.SessionListItem {
	return &queries.SessionListItem{
		ID:                b.ID,
		ItemID:            b.ItemID,
		BuyerID:           b.BuyerID,
		SellerID:          b.SellerID,
		Status:            b.Status.String(),
		CurrentOfferCents: b.CurrentOfferCents,
		LastActivity:      b.Now,
		ExpiresAt:         b.Now.Add(domneg.SessionTTL),
	}
}

func (b *SessionBuilder) BuildMessageView(sender uuid.UUID) *queries.MessageView {
	return &queries.MessageView{
		ID:        uuid.New(),
		SessionID: b.ID,
		SenderID:  sender,
		Type:      domneg.MessageTypeTemplate.String(),
		Content:   "Is the price negotiable?",
		CreatedAt: b.Now,
	}
}
