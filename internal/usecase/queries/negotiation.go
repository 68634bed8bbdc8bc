package queries

import (
	"context"

	"haggle-service/internal/domain/identity"
	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindMessages(ctx context.Context, sessionID uuid.UUID) ([]MessageView, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID, limit int) ([]*SessionListItem, error)
	FindReports(ctx context.Context, sessionID uuid.UUID) ([]ReportView, error)
}

type NegotiationQueries interface {
	GetSession(ctx context.Context, id, viewerID uuid.UUID, role identity.Role) (*SessionDetailView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*SessionListItem, error)
	ListReports(ctx context.Context, sessionID uuid.UUID) ([]ReportView, error)
}

type negotiationQueriesImpl struct {
	store SessionReadStore
	clock clock.Clock
}

func NewNegotiationQueries(store SessionReadStore, clock clock.Clock) NegotiationQueries {
	return &negotiationQueriesImpl{store: store, clock: clock}
}

func (q *negotiationQueriesImpl) GetSession(ctx context.Context, id, viewerID uuid.UUID, role identity.Role) (*SessionDetailView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNegotiationNotFound
		}
		return nil, err
	}

	if role != identity.RoleAdmin && viewerID != view.BuyerID && viewerID != view.SellerID {
		return nil, errs.ErrNotParticipant
	}

	messages, err := q.store.FindMessages(ctx, id)
	if err != nil {
		return nil, err
	}

	applyLazyExpiry(view, q.clock)

	return &SessionDetailView{
		Session:  *view,
		Messages: messages,
	}, nil
}

func (q *negotiationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*SessionListItem, error) {
	items, err := q.store.FindByParticipant(ctx, userID, ValidateLimit(limit))
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, item := range items {
		if item.Status == negotiation.StatusActive.String() && now.After(item.ExpiresAt) {
			item.Status = negotiation.StatusExpired.String()
		}
	}
	return items, nil
}

// ListReports returns the abuse reports filed against a session. Access is
// restricted to moderators at the route level.
func (q *negotiationQueriesImpl) ListReports(ctx context.Context, sessionID uuid.UUID) ([]ReportView, error) {
	if _, err := q.store.FindByID(ctx, sessionID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNegotiationNotFound
		}
		return nil, err
	}
	return q.store.FindReports(ctx, sessionID)
}

// applyLazyExpiry folds the derived expiry predicate into the view; no write
// happens for a session to read as expired.
func applyLazyExpiry(view *SessionView, clk clock.Clock) {
	if view.Status == negotiation.StatusActive.String() && clk.Now().After(view.ExpiresAt) {
		view.Status = negotiation.StatusExpired.String()
	}
}
