package repository

import (
	"context"
	"time"

	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `
	id, item_id, buyer_id, seller_id, status,
	original_price_cents, minimum_price_cents, current_offer_cents, final_price_cents,
	buyer_message_count, seller_message_count, offer_count,
	last_buyer_message, last_seller_message, is_blocked,
	created_at, last_activity, expires_at, version`

type SessionRepository struct{}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Create(ctx context.Context, db DBTX, s *negotiation.Session) error {
	_, err := db.Exec(ctx, `
		INSERT INTO negotiation_sessions (
			id, item_id, buyer_id, seller_id, status,
			original_price_cents, minimum_price_cents, current_offer_cents, final_price_cents,
			buyer_message_count, seller_message_count, offer_count,
			last_buyer_message, last_seller_message, is_blocked,
			created_at, last_activity, expires_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		s.ID(), s.ItemID(), s.BuyerID(), s.SellerID(), s.Status().String(),
		s.OriginalPriceCents(), s.MinimumPriceCents(), s.CurrentOfferCents(), s.FinalPriceCents(),
		s.BuyerMessageCount(), s.SellerMessageCount(), s.OfferCount(),
		s.LastBuyerMessage(), s.LastSellerMessage(), s.IsBlocked(),
		s.CreatedAt(), s.LastActivity(), s.ExpiresAt(), s.Version(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("an active negotiation already exists for this item and buyer", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert negotiation session", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*negotiation.Session, error) {
	row := db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM negotiation_sessions WHERE id = $1`, id)
	s, err := scanSession(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("negotiation session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find negotiation session", err)
	}
	return s, nil
}

// Update persists mutated session state under optimistic versioning. A zero
// row count means another writer got there first.
func (r *SessionRepository) Update(ctx context.Context, db DBTX, s *negotiation.Session) error {
	tag, err := db.Exec(ctx, `
		UPDATE negotiation_sessions SET
			status = $1,
			current_offer_cents = $2,
			final_price_cents = $3,
			buyer_message_count = $4,
			seller_message_count = $5,
			offer_count = $6,
			last_buyer_message = $7,
			last_seller_message = $8,
			last_activity = $9,
			version = version + 1
		WHERE id = $10 AND version = $11`,
		s.Status().String(), s.CurrentOfferCents(), s.FinalPriceCents(),
		s.BuyerMessageCount(), s.SellerMessageCount(), s.OfferCount(),
		s.LastBuyerMessage(), s.LastSellerMessage(), s.LastActivity(),
		s.ID(), s.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update negotiation session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("negotiation session was modified concurrently", nil, infra.KindVersionConflict)
	}
	return nil
}

// AcceptIfActive is the atomic active→accepted transition. Exactly one of two
// racing callers sees a row count of one.
func (r *SessionRepository) AcceptIfActive(ctx context.Context, db DBTX, id uuid.UUID, finalPriceCents int64, acceptedAt time.Time) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE negotiation_sessions SET
			status = $1,
			final_price_cents = $2,
			last_activity = $3,
			version = version + 1
		WHERE id = $4 AND status = $5`,
		negotiation.StatusAccepted.String(), finalPriceCents, acceptedAt,
		id, negotiation.StatusActive.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to accept negotiation session", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ExpireStaleActive persists the expired status for an active session of the
// pair whose deadline has passed. This is the one write lazy expiry needs:
// without it a dormant session would hold the active-pair unique index
// forever. Returns true when a row was flipped.
func (r *SessionRepository) ExpireStaleActive(ctx context.Context, db DBTX, itemID, buyerID uuid.UUID, now time.Time) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE negotiation_sessions SET
			status = $1,
			version = version + 1
		WHERE item_id = $2 AND buyer_id = $3 AND status = $4 AND expires_at <= $5`,
		negotiation.StatusExpired.String(), itemID, buyerID,
		negotiation.StatusActive.String(), now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to expire stale negotiation session", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SessionRepository) AppendMessage(ctx context.Context, db DBTX, m *negotiation.Message) error {
	_, err := db.Exec(ctx, `
		INSERT INTO negotiation_messages (
			id, session_id, sender_id, message_type, content,
			template_id, price_offer_cents, is_filtered, filtered_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.ID(), m.SessionID(), m.Sender(), m.Type().String(), m.Content().String(),
		m.TemplateID(), m.PriceOffer(), m.IsFiltered(), m.FilteredReason(), m.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append negotiation message", err)
	}
	return nil
}

// RecentStamps returns the sender/timestamp projection of the log the rate
// limiter works on.
func (r *SessionRepository) RecentStamps(ctx context.Context, db DBTX, sessionID uuid.UUID, since time.Time) ([]negotiation.MessageStamp, error) {
	rows, err := db.Query(ctx, `
		SELECT sender_id, created_at
		FROM negotiation_messages
		WHERE session_id = $1 AND created_at > $2`,
		sessionID, since,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load recent message stamps", err)
	}
	defer rows.Close()

	var stamps []negotiation.MessageStamp
	for rows.Next() {
		var stamp negotiation.MessageStamp
		if err := rows.Scan(&stamp.Sender, &stamp.SentAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message stamp", err)
		}
		stamps = append(stamps, stamp)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message stamps", err)
	}
	return stamps, nil
}

func (r *SessionRepository) InsertReport(ctx context.Context, db DBTX, rep *negotiation.Report) error {
	_, err := db.Exec(ctx, `
		INSERT INTO session_reports (id, session_id, reporter_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		rep.ID, rep.SessionID, rep.ReporterID, rep.Reason, rep.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert session report", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*negotiation.Session, error) {
	var (
		id, itemID, buyerID, sellerID          uuid.UUID
		status                                 string
		originalPrice, minimumPrice            int64
		currentOffer, finalPrice               *int64
		buyerCount, sellerCount, offerCount    int32
		lastBuyerMessage, lastSellerMessage    *time.Time
		isBlocked                              bool
		createdAt, lastActivity, expiresAt     time.Time
		version                                int64
	)
	if err := row.Scan(
		&id, &itemID, &buyerID, &sellerID, &status,
		&originalPrice, &minimumPrice, &currentOffer, &finalPrice,
		&buyerCount, &sellerCount, &offerCount,
		&lastBuyerMessage, &lastSellerMessage, &isBlocked,
		&createdAt, &lastActivity, &expiresAt, &version,
	); err != nil {
		return nil, err
	}
	return negotiation.ReconstructSession(
		id, itemID, buyerID, sellerID,
		negotiation.Status(status),
		originalPrice, minimumPrice,
		currentOffer, finalPrice,
		buyerCount, sellerCount, offerCount,
		lastBuyerMessage, lastSellerMessage,
		isBlocked,
		createdAt, lastActivity, expiresAt,
		version,
	), nil
}
