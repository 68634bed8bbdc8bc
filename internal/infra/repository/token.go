package repository

import (
	"context"
	"time"

	"haggle-service/internal/domain/token"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const tokenColumns = `
	id, code, session_id, item_id, buyer_id, seller_id,
	original_price_cents, discounted_price_cents, discount_amount_cents, discount_percentage,
	is_active, is_used, used_at, purchase_ref, created_at, expires_at`

// Constraint names from the settlement_tokens migration; Create tells a code
// collision apart from a duplicate issuance by the violated constraint.
const (
	codeUniqueConstraint    = "settlement_tokens_code_key"
	sessionUniqueConstraint = "settlement_tokens_session_id_key"
)

var (
	ErrCodeCollision     = infra.WrapRepoErr("discount code collision", nil, infra.KindDuplicateKey)
	ErrTokenAlreadyBound = infra.WrapRepoErr("a token is already bound to this session", nil, infra.KindDuplicateKey)
)

type TokenRepository struct{}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{}
}

func (r *TokenRepository) Create(ctx context.Context, db DBTX, t *token.SettlementToken) error {
	_, err := db.Exec(ctx, `
		INSERT INTO settlement_tokens (
			id, code, session_id, item_id, buyer_id, seller_id,
			original_price_cents, discounted_price_cents, discount_amount_cents, discount_percentage,
			is_active, is_used, used_at, purchase_ref, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID(), t.Code().String(), t.SessionID(), t.ItemID(), t.BuyerID(), t.SellerID(),
		t.OriginalPriceCents(), t.DiscountedPriceCents(), t.DiscountAmountCents(), t.DiscountPercentage(),
		t.IsActive(), t.IsUsed(), t.UsedAt(), t.PurchaseRef(), t.CreatedAt(), t.ExpiresAt(),
	)
	if err != nil {
		switch {
		case pgconv.IsUniqueViolationOn(err, codeUniqueConstraint):
			return ErrCodeCollision
		case pgconv.IsUniqueViolationOn(err, sessionUniqueConstraint):
			return ErrTokenAlreadyBound
		default:
			return infra.WrapRepoErr("failed to insert settlement token", err)
		}
	}
	return nil
}

func (r *TokenRepository) FindByCode(ctx context.Context, db DBTX, code string) (*token.SettlementToken, error) {
	row := db.QueryRow(ctx, `SELECT `+tokenColumns+` FROM settlement_tokens WHERE code = $1`, code)
	t, err := scanToken(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settlement token not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find settlement token by code", err)
	}
	return t, nil
}

func (r *TokenRepository) FindBySessionID(ctx context.Context, db DBTX, sessionID uuid.UUID) (*token.SettlementToken, error) {
	row := db.QueryRow(ctx, `SELECT `+tokenColumns+` FROM settlement_tokens WHERE session_id = $1`, sessionID)
	t, err := scanToken(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settlement token not found for session", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find settlement token by session", err)
	}
	return t, nil
}

// MarkUsed is the atomic unused→used transition. At most one concurrent
// caller sees a row count of one; losers get AlreadyUsed from the caller.
func (r *TokenRepository) MarkUsed(ctx context.Context, db DBTX, code string, purchaseRef string, usedAt time.Time) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE settlement_tokens SET
			is_used = TRUE,
			used_at = $1,
			purchase_ref = $2
		WHERE code = $3 AND is_used = FALSE AND is_active = TRUE`,
		usedAt, purchaseRef, code,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark settlement token used", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanToken(row pgx.Row) (*token.SettlementToken, error) {
	var (
		id, sessionID, itemID, buyerID, sellerID       uuid.UUID
		code                                           string
		originalPrice, discountedPrice, discountAmount int64
		discountPercentage                             int32
		isActive, isUsed                               bool
		usedAt                                         *time.Time
		purchaseRef                                    *string
		createdAt, expiresAt                           time.Time
	)
	if err := row.Scan(
		&id, &code, &sessionID, &itemID, &buyerID, &sellerID,
		&originalPrice, &discountedPrice, &discountAmount, &discountPercentage,
		&isActive, &isUsed, &usedAt, &purchaseRef, &createdAt, &expiresAt,
	); err != nil {
		return nil, err
	}
	return token.ReconstructSettlementToken(
		id, token.Code(code),
		sessionID, itemID, buyerID, sellerID,
		originalPrice, discountedPrice, discountAmount, discountPercentage,
		isActive, isUsed, usedAt, purchaseRef,
		createdAt, expiresAt,
	), nil
}
