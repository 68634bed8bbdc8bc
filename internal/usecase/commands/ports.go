package commands

import (
	"context"
	"time"

	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/domain/token"
	"haggle-service/internal/infra/repository"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, db repository.DBTX, s *negotiation.Session) error
	FindByID(ctx context.Context, db repository.DBTX, id uuid.UUID) (*negotiation.Session, error)
	Update(ctx context.Context, db repository.DBTX, s *negotiation.Session) error
	AcceptIfActive(ctx context.Context, db repository.DBTX, id uuid.UUID, finalPriceCents int64, acceptedAt time.Time) (bool, error)
	ExpireStaleActive(ctx context.Context, db repository.DBTX, itemID, buyerID uuid.UUID, now time.Time) (bool, error)
	AppendMessage(ctx context.Context, db repository.DBTX, m *negotiation.Message) error
	RecentStamps(ctx context.Context, db repository.DBTX, sessionID uuid.UUID, since time.Time) ([]negotiation.MessageStamp, error)
	InsertReport(ctx context.Context, db repository.DBTX, rep *negotiation.Report) error
}

type TokenRepository interface {
	Create(ctx context.Context, db repository.DBTX, t *token.SettlementToken) error
	FindByCode(ctx context.Context, db repository.DBTX, code string) (*token.SettlementToken, error)
	FindBySessionID(ctx context.Context, db repository.DBTX, sessionID uuid.UUID) (*token.SettlementToken, error)
	MarkUsed(ctx context.Context, db repository.DBTX, code string, purchaseRef string, usedAt time.Time) (bool, error)
}
