package commands

import (
	"context"

	"haggle-service/internal/domain/token"
	reqdto "haggle-service/internal/handler/dto/request"
	"haggle-service/internal/infra"
	"haggle-service/internal/infra/repository"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/queries"
	"haggle-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenCommands interface {
	Redeem(ctx context.Context, req reqdto.RedeemTokenRequest) (*queries.TokenView, error)
}

type tokenCommandsImpl struct {
	tokenRepo TokenRepository
	db        *pgxpool.Pool
	clock     clock.Clock
}

func NewTokenCommands(tokenRepo TokenRepository, db *pgxpool.Pool, clock clock.Clock) TokenCommands {
	return &tokenCommandsImpl{
		tokenRepo: tokenRepo,
		db:        db,
		clock:     clock,
	}
}

// Redeem marks a code used exactly once. The unused→used flip is an atomic
// conditional update; a losing concurrent racer gets AlreadyUsed, never a
// double redemption. Called by the purchase flow after payment capture.
func (c *tokenCommandsImpl) Redeem(ctx context.Context, req reqdto.RedeemTokenRequest) (*queries.TokenView, error) {
	code, err := token.NewCode(req.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenNotFound)
	}

	redeemed, err := shared.RunInTx(ctx, c.db, func(tx repository.DBTX) (*token.SettlementToken, error) {
		t, err := c.tokenRepo.FindByCode(ctx, tx, code.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrTokenNotFound)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := c.clock.Now()
		if t.IsUsed() {
			return nil, errs.ErrTokenAlreadyUsed
		}
		if !t.IsActive() {
			return nil, errs.ErrTokenNotValid
		}
		if t.IsExpiredAt(now) {
			return nil, errs.ErrTokenExpired
		}

		won, err := c.tokenRepo.MarkUsed(ctx, tx, code.String(), req.PurchaseRef, now)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !won {
			// Another redemption got there between the read and the update.
			return nil, errs.ErrTokenAlreadyUsed
		}

		return c.tokenRepo.FindByCode(ctx, tx, code.String())
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToTokenView(redeemed)
	return &view, nil
}
