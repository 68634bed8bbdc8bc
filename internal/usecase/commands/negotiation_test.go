//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"haggle-service/internal/infra"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/commands"
	"haggle-service/tests/common/builder"
	mock_ports "haggle-service/tests/mock/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, b *builder.SessionBuilder) (*mock_ports.MockSessionRepository, commands.NegotiationCommands) {
		t.Helper()
		ctrl := gomock.NewController(t)
		sessionRepo := mock_ports.NewMockSessionRepository(ctrl)
		tokenRepo := mock_ports.NewMockTokenRepository(ctrl)
		services, _ := b.Services()
		cmd := commands.NewNegotiationCommands(sessionRepo, tokenRepo, services, nil, clock.NewMockClock(b.Now))
		return sessionRepo, cmd
	}

	duplicateErr := func() error {
		return infra.WrapRepoErr("an active negotiation already exists for this item and buyer",
			errors.New("unique violation"), infra.KindDuplicateKey)
	}

	t.Run("opens a fresh session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		sessionRepo, cmd := setup(t, b)

		sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil)

		view, err := cmd.Open(ctx, b.BuildOpenRequestDTO(), b.BuyerID)
		require.NoError(t, err)
		assert.Equal(t, b.ItemID, view.ItemID)
		assert.Equal(t, b.BuyerID, view.BuyerID)
		assert.Equal(t, "active", view.Status)
	})

	t.Run("clears a dormant expired blocker and retries", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		sessionRepo, cmd := setup(t, b)

		// The stored row still reads active, but its deadline has passed.
		// The conditional status flip clears it and the insert goes through.
		gomock.InOrder(
			sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(duplicateErr()),
			sessionRepo.EXPECT().ExpireStaleActive(ctx, gomock.Any(), b.ItemID, b.BuyerID, b.Now).Return(true, nil),
			sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(nil),
		)

		view, err := cmd.Open(ctx, b.BuildOpenRequestDTO(), b.BuyerID)
		require.NoError(t, err)
		assert.Equal(t, b.ItemID, view.ItemID)
	})

	t.Run("live blocker stays a duplicate", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		sessionRepo, cmd := setup(t, b)

		gomock.InOrder(
			sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(duplicateErr()),
			sessionRepo.EXPECT().ExpireStaleActive(ctx, gomock.Any(), b.ItemID, b.BuyerID, b.Now).Return(false, nil),
		)

		_, err := cmd.Open(ctx, b.BuildOpenRequestDTO(), b.BuyerID)
		assert.ErrorIs(t, err, errs.ErrDuplicateActiveSession)
	})

	t.Run("blocker recreated during retry is a duplicate", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		sessionRepo, cmd := setup(t, b)

		gomock.InOrder(
			sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(duplicateErr()),
			sessionRepo.EXPECT().ExpireStaleActive(ctx, gomock.Any(), b.ItemID, b.BuyerID, b.Now).Return(true, nil),
			sessionRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(duplicateErr()),
		)

		_, err := cmd.Open(ctx, b.BuildOpenRequestDTO(), b.BuyerID)
		assert.ErrorIs(t, err, errs.ErrDuplicateActiveSession)
	})
}
