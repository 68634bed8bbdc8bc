package readstore

import (
	"context"

	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/pgconv"
	"haggle-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionReadStore struct {
	db *pgxpool.Pool
}

func NewSessionReadStore(db *pgxpool.Pool) *SessionReadStore {
	return &SessionReadStore{db: db}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, item_id, buyer_id, seller_id, status,
			original_price_cents, minimum_price_cents, current_offer_cents, final_price_cents,
			buyer_message_count, seller_message_count, offer_count, is_blocked,
			created_at, last_activity, expires_at
		FROM negotiation_sessions
		WHERE id = $1`, id)

	var view queries.SessionView
	if err := row.Scan(
		&view.ID, &view.ItemID, &view.BuyerID, &view.SellerID, &view.Status,
		&view.OriginalPriceCents, &view.MinimumPriceCents, &view.CurrentOfferCents, &view.FinalPriceCents,
		&view.BuyerMessageCount, &view.SellerMessageCount, &view.OfferCount, &view.IsBlocked,
		&view.CreatedAt, &view.LastActivity, &view.ExpiresAt,
	); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("negotiation session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get negotiation session view", err)
	}
	return &view, nil
}

func (r *SessionReadStore) FindMessages(ctx context.Context, sessionID uuid.UUID) ([]queries.MessageView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, sender_id, message_type, content,
			template_id, price_offer_cents, is_filtered, filtered_reason, created_at
		FROM negotiation_messages
		WHERE session_id = $1
		ORDER BY created_at, id`, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get negotiation messages", err)
	}
	defer rows.Close()

	var messages []queries.MessageView
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(
			&m.ID, &m.SessionID, &m.SenderID, &m.Type, &m.Content,
			&m.TemplateID, &m.PriceOfferCents, &m.IsFiltered, &m.FilteredReason, &m.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan negotiation message", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate negotiation messages", err)
	}
	return messages, nil
}

func (r *SessionReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.SessionListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, item_id, buyer_id, seller_id, status, current_offer_cents, last_activity, expires_at
		FROM negotiation_sessions
		WHERE buyer_id = $1 OR seller_id = $1
		ORDER BY last_activity DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list negotiations by participant", err)
	}
	defer rows.Close()

	var items []*queries.SessionListItem
	for rows.Next() {
		var item queries.SessionListItem
		if err := rows.Scan(
			&item.ID, &item.ItemID, &item.BuyerID, &item.SellerID,
			&item.Status, &item.CurrentOfferCents, &item.LastActivity, &item.ExpiresAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan negotiation list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate negotiation list", err)
	}
	return items, nil
}

func (r *SessionReadStore) FindReports(ctx context.Context, sessionID uuid.UUID) ([]queries.ReportView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, reporter_id, reason, created_at
		FROM session_reports
		WHERE session_id = $1
		ORDER BY created_at, id`, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session reports", err)
	}
	defer rows.Close()

	var reports []queries.ReportView
	for rows.Next() {
		var rep queries.ReportView
		if err := rows.Scan(&rep.ID, &rep.SessionID, &rep.ReporterID, &rep.Reason, &rep.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session report", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate session reports", err)
	}
	return reports, nil
}
