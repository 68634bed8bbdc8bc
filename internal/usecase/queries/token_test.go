//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"haggle-service/internal/domain/token"
	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/queries"
	"haggle-service/tests/common/builder"
	mock_queries "haggle-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errNoRows = errors.New("no rows in result set")

func TestValidate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, now time.Time) (*mock_queries.MockTokenReadStore, queries.TokenQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockTokenReadStore(ctrl)
		return store, queries.NewTokenQueries(store, clock.NewMockClock(now))
	}

	t.Run("redeemable token validates with a view", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		store, q := setup(t, b.Now.Add(time.Hour))

		tok, err := b.BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindByCode(ctx, b.Code).Return(tok, nil)

		result, err := q.Validate(ctx, b.Code, b.BuyerID, b.ItemID)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Reason)
		require.NotNil(t, result.Token)
		assert.Equal(t, b.Code, result.Token.Code)
		assert.Equal(t, int64(1500), result.Token.DiscountAmountCents)
	})

	t.Run("malformed code fails without a lookup", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		_, q := setup(t, b.Now)

		result, err := q.Validate(ctx, "not-a-code", b.BuyerID, b.ItemID)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, queries.InvalidCodeReason, result.Reason)
		assert.Nil(t, result.Token)
	})

	t.Run("unknown code fails with the generic reason", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindByCode(ctx, b.Code).
			Return(nil, infra.WrapRepoErr("settlement token not found", errNoRows, infra.KindNotFound))

		result, err := q.Validate(ctx, b.Code, b.BuyerID, b.ItemID)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, queries.InvalidCodeReason, result.Reason)
	})

	t.Run("every redemption failure shares one reason", func(t *testing.T) {
		b := builder.NewTokenBuilder()

		cases := []struct {
			name  string
			buyer uuid.UUID
			item  uuid.UUID
			now   time.Time
		}{
			{name: "wrong buyer", buyer: uuid.New(), item: b.ItemID, now: b.Now},
			{name: "wrong item", buyer: b.BuyerID, item: uuid.New(), now: b.Now},
			{name: "expired", buyer: b.BuyerID, item: b.ItemID, now: b.Now.Add(token.TokenTTL + time.Second)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store, q := setup(t, tc.now)
				tok, err := b.BuildDomain()
				require.NoError(t, err)
				store.EXPECT().FindByCode(ctx, b.Code).Return(tok, nil)

				result, err := q.Validate(ctx, b.Code, tc.buyer, tc.item)
				require.NoError(t, err)
				assert.False(t, result.Valid)
				assert.Equal(t, queries.InvalidCodeReason, result.Reason)
			})
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		store, q := setup(t, b.Now)

		dbErr := infra.WrapRepoErr("failed to find settlement token by code", errors.New("connection reset"))
		store.EXPECT().FindByCode(ctx, b.Code).Return(nil, dbErr)

		_, err := q.Validate(ctx, b.Code, b.BuyerID, b.ItemID)
		assert.Error(t, err)
	})
}

func TestGetBySession(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, now time.Time) (*mock_queries.MockTokenReadStore, queries.TokenQueries) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := mock_queries.NewMockTokenReadStore(ctrl)
		return store, queries.NewTokenQueries(store, clock.NewMockClock(now))
	}

	t.Run("both parties can see the token", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		tok, err := b.BuildDomain()
		require.NoError(t, err)

		for _, viewer := range []uuid.UUID{b.BuyerID, b.SellerID} {
			store, q := setup(t, b.Now)
			store.EXPECT().FindBySession(ctx, b.SessionID).Return(tok, nil)

			view, err := q.GetBySession(ctx, b.SessionID, viewer)
			require.NoError(t, err)
			assert.Equal(t, b.Code, view.Code)
		}
	})

	t.Run("outsider is refused", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		store, q := setup(t, b.Now)

		tok, err := b.BuildDomain()
		require.NoError(t, err)
		store.EXPECT().FindBySession(ctx, b.SessionID).Return(tok, nil)

		_, err = q.GetBySession(ctx, b.SessionID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("no token for session", func(t *testing.T) {
		b := builder.NewTokenBuilder()
		store, q := setup(t, b.Now)

		store.EXPECT().FindBySession(ctx, b.SessionID).
			Return(nil, infra.WrapRepoErr("settlement token not found for session", errNoRows, infra.KindNotFound))

		_, err := q.GetBySession(ctx, b.SessionID, b.BuyerID)
		assert.ErrorIs(t, err, errs.ErrTokenNotFound)
	})
}
