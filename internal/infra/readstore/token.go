package readstore

import (
	"context"

	"haggle-service/internal/domain/token"
	"haggle-service/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenReadStore serves the query side from the same table the write side
// owns; the repository already returns the domain entity, so reads delegate
// to it with the pool as the DBTX.
type TokenReadStore struct {
	db   *pgxpool.Pool
	repo *repository.TokenRepository
}

func NewTokenReadStore(db *pgxpool.Pool, repo *repository.TokenRepository) *TokenReadStore {
	return &TokenReadStore{db: db, repo: repo}
}

func (r *TokenReadStore) FindByCode(ctx context.Context, code string) (*token.SettlementToken, error) {
	return r.repo.FindByCode(ctx, r.db, code)
}

func (r *TokenReadStore) FindBySession(ctx context.Context, sessionID uuid.UUID) (*token.SettlementToken, error) {
	return r.repo.FindBySessionID(ctx, r.db, sessionID)
}
