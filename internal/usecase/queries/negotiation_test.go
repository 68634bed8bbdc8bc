//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"haggle-service/internal/domain/identity"
	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/queries"
	"haggle-service/tests/common/builder"
	mock_queries "haggle-service/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetSession(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, now time.Time) (*mock_queries.MockSessionReadStore, queries.NegotiationQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockSessionReadStore(ctrl)
		return store, queries.NewNegotiationQueries(store, clock.NewMockClock(now))
	}

	t.Run("participant sees session with messages", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		view := b.BuildView()
		messages := []queries.MessageView{*b.BuildMessageView(b.BuyerID)}

		store.EXPECT().FindByID(ctx, b.ID).Return(view, nil)
		store.EXPECT().FindMessages(ctx, b.ID).Return(messages, nil)

		detail, err := q.GetSession(ctx, b.ID, b.BuyerID, identity.RoleUser)
		require.NoError(t, err)
		if diff := cmp.Diff(*view, detail.Session); diff != "" {
			t.Errorf("session view mismatch (-want +got):\n%s", diff)
		}
		assert.Len(t, detail.Messages, 1)
	})

	t.Run("admin sees any session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		store.EXPECT().FindMessages(ctx, b.ID).Return(nil, nil)

		_, err := q.GetSession(ctx, b.ID, uuid.New(), identity.RoleAdmin)
		assert.NoError(t, err)
	})

	t.Run("outsider is refused", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)

		_, err := q.GetSession(ctx, b.ID, uuid.New(), identity.RoleUser)
		assert.ErrorIs(t, err, errs.ErrNotParticipant)
	})

	t.Run("active session past its deadline reads as expired", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now.Add(negotiation.SessionTTL+time.Minute))

		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		store.EXPECT().FindMessages(ctx, b.ID).Return(nil, nil)

		detail, err := q.GetSession(ctx, b.ID, b.BuyerID, identity.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusExpired.String(), detail.Session.Status)
	})

	t.Run("accepted session never reads as expired", func(t *testing.T) {
		b := builder.NewSessionBuilder().WithStatus(negotiation.StatusAccepted)
		store, q := setup(t, b.Now.Add(negotiation.SessionTTL+time.Minute))

		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		store.EXPECT().FindMessages(ctx, b.ID).Return(nil, nil)

		detail, err := q.GetSession(ctx, b.ID, b.BuyerID, identity.RoleUser)
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusAccepted.String(), detail.Session.Status)
	})

	t.Run("unknown session maps to domain error", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindByID(ctx, b.ID).
			Return(nil, infra.WrapRepoErr("negotiation session not found", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := q.GetSession(ctx, b.ID, b.BuyerID, identity.RoleUser)
		assert.ErrorIs(t, err, errs.ErrNegotiationNotFound)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("folds lazy expiry into each item", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockSessionReadStore(ctrl)
		q := queries.NewNegotiationQueries(store, clock.NewMockClock(b.Now.Add(negotiation.SessionTTL+time.Minute)))

		stale := b.BuildListItem()
		closed := builder.NewSessionBuilder().WithStatus(negotiation.StatusRejected).BuildListItem()

		store.EXPECT().FindByParticipant(ctx, b.BuyerID, 20).Return([]*queries.SessionListItem{stale, closed}, nil)

		items, err := q.ListByUser(ctx, b.BuyerID, 20)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, negotiation.StatusExpired.String(), items[0].Status)
		assert.Equal(t, negotiation.StatusRejected.String(), items[1].Status)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockSessionReadStore(ctrl)
		q := queries.NewNegotiationQueries(store, clock.NewMockClock(b.Now))

		store.EXPECT().FindByParticipant(ctx, b.BuyerID, 20).Return(nil, nil)
		_, err := q.ListByUser(ctx, b.BuyerID, 0)
		require.NoError(t, err)

		store.EXPECT().FindByParticipant(ctx, b.BuyerID, 100).Return(nil, nil)
		_, err = q.ListByUser(ctx, b.BuyerID, 500)
		require.NoError(t, err)
	})
}

func TestListReports(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, now time.Time) (*mock_queries.MockSessionReadStore, queries.NegotiationQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockSessionReadStore(ctrl)
		return store, queries.NewNegotiationQueries(store, clock.NewMockClock(now))
	}

	t.Run("returns reports for an existing session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		report := queries.ReportView{
			ID:         uuid.New(),
			SessionID:  b.ID,
			ReporterID: b.SellerID,
			Reason:     "repeated contact info in messages",
			CreatedAt:  b.Now,
		}
		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		store.EXPECT().FindReports(ctx, b.ID).Return([]queries.ReportView{report}, nil)

		reports, err := q.ListReports(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, report, reports[0])
	})

	t.Run("unknown session maps to domain error", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindByID(ctx, b.ID).
			Return(nil, infra.WrapRepoErr("negotiation session not found", errors.New("no rows in result set"), infra.KindNotFound))

		_, err := q.ListReports(ctx, b.ID)
		assert.ErrorIs(t, err, errs.ErrNegotiationNotFound)
	})
}
