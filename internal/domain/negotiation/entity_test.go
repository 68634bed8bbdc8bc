//go:build unit

package negotiation_test

import (
	"testing"
	"time"

	"haggle-service/internal/domain/negotiation"
	"haggle-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		session, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, session)

		assert.NotEqual(t, uuid.Nil, session.ID())
		assert.Equal(t, negotiation.StatusActive, session.Status())
		assert.Equal(t, int64(10000), session.OriginalPriceCents())
		assert.Equal(t, int64(7000), session.MinimumPriceCents())
		assert.Nil(t, session.CurrentOfferCents())
		assert.Equal(t, b.Now, session.CreatedAt())
		assert.Equal(t, b.Now.Add(negotiation.SessionTTL), session.ExpiresAt())
		assert.Equal(t, int64(1), session.Version())
	})

	t.Run("minimum price rounds down", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		b.OriginalPriceCents = 999
		session, err := b.BuildDomain()
		require.NoError(t, err)

		// 999 * 7 / 10 = 699.3, floored
		assert.Equal(t, int64(699), session.MinimumPriceCents())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		b.OriginalPriceCents = 0
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, negotiation.ErrInvalidPrice)

		b.OriginalPriceCents = -100
		_, err = b.BuildDomain()
		assert.ErrorIs(t, err, negotiation.ErrInvalidPrice)
	})

	t.Run("rejects buyer negotiating with themselves", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		b.SellerID = b.BuyerID
		_, err := b.BuildDomain()
		assert.ErrorIs(t, err, negotiation.ErrSameParty)
	})
}

func TestSessionPostMessage(t *testing.T) {
	newActive := func(t *testing.T) (*negotiation.Session, *builder.SessionBuilder, *negotiation.Services) {
		t.Helper()
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session, err := b.BuildDomain()
		require.NoError(t, err)
		return session, b, services
	}

	content := func(t *testing.T, text string) negotiation.Content {
		t.Helper()
		c, err := negotiation.NewContent(text)
		require.NoError(t, err)
		return c
	}

	t.Run("buyer posts a template message", func(t *testing.T) {
		session, b, services := newActive(t)

		msg, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "Is the price negotiable?"), nil, nil)
		require.NoError(t, err)
		require.NotNil(t, msg)

		assert.Equal(t, session.ID(), msg.SessionID())
		assert.Equal(t, b.BuyerID, msg.Sender())
		assert.False(t, msg.IsFiltered())
		assert.Equal(t, int32(1), session.BuyerMessageCount())
		assert.Equal(t, int32(0), session.SellerMessageCount())
		assert.Equal(t, int32(0), session.OfferCount())
		assert.Nil(t, session.CurrentOfferCents())
		require.NotNil(t, session.LastBuyerMessage())
	})

	t.Run("price offer updates the standing offer", func(t *testing.T) {
		session, b, services := newActive(t)
		offer := int64(8000)

		msg, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypePriceOffer, content(t, "Would you take 80?"), nil, &offer)
		require.NoError(t, err)
		require.NotNil(t, msg.PriceOffer())

		assert.Equal(t, offer, *msg.PriceOffer())
		require.NotNil(t, session.CurrentOfferCents())
		assert.Equal(t, offer, *session.CurrentOfferCents())
		assert.Equal(t, int32(1), session.OfferCount())
	})

	t.Run("counter offer replaces the standing offer", func(t *testing.T) {
		session, b, services := newActive(t)
		first := int64(8000)
		second := int64(9000)

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypePriceOffer, content(t, "80?"), nil, &first)
		require.NoError(t, err)
		_, err = session.PostMessage(services, nil, b.SellerID, negotiation.MessageTypeCounterOffer, content(t, "90 and it is yours"), nil, &second)
		require.NoError(t, err)

		require.NotNil(t, session.CurrentOfferCents())
		assert.Equal(t, second, *session.CurrentOfferCents())
		assert.Equal(t, int32(2), session.OfferCount())
		assert.Equal(t, int32(1), session.BuyerMessageCount())
		assert.Equal(t, int32(1), session.SellerMessageCount())
	})

	t.Run("offer type requires a price", func(t *testing.T) {
		session, b, services := newActive(t)

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypePriceOffer, content(t, "no price attached"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrOfferMissing)
	})

	t.Run("rejects non-positive offer", func(t *testing.T) {
		session, b, services := newActive(t)
		bad := int64(0)

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypePriceOffer, content(t, "zero"), nil, &bad)
		assert.ErrorIs(t, err, negotiation.ErrInvalidPrice)
	})

	t.Run("rejects unknown message type", func(t *testing.T) {
		session, b, services := newActive(t)

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageType("carrier_pigeon"), content(t, "coo"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrInvalidMessageType)
	})

	t.Run("rejects outsider", func(t *testing.T) {
		session, _, services := newActive(t)

		_, err := session.PostMessage(services, nil, uuid.New(), negotiation.MessageTypeTemplate, content(t, "hello"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrNotParticipant)
	})

	t.Run("rejects after expiry", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, mock := b.Services()
		session, err := b.BuildDomain()
		require.NoError(t, err)

		mock.Add(negotiation.SessionTTL + time.Minute)

		_, err = session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "anyone there?"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrSessionExpired)
	})

	t.Run("rejects on terminal session", func(t *testing.T) {
		b := builder.NewSessionBuilder().WithStatus(negotiation.StatusRejected)
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "hello"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrSessionTerminal)
	})

	t.Run("rejects on blocked session", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		b.IsBlocked = true
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "hello"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrSessionBlocked)
	})

	t.Run("rate limited sender leaves counters untouched", func(t *testing.T) {
		session, b, services := newActive(t)

		now := b.Now
		stamps := make([]negotiation.MessageStamp, negotiation.MessageLimit)
		for i := range stamps {
			stamps[i] = negotiation.MessageStamp{Sender: b.BuyerID, SentAt: now.Add(-time.Duration(i) * time.Minute)}
		}

		_, err := session.PostMessage(services, stamps, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "one more"), nil, nil)
		assert.ErrorIs(t, err, negotiation.ErrRateLimitExceeded)
		assert.Equal(t, int32(0), session.BuyerMessageCount())

		// The other party is not limited by the buyer's burst.
		_, err = session.PostMessage(services, stamps, b.SellerID, negotiation.MessageTypeTemplate, content(t, "still here"), nil, nil)
		assert.NoError(t, err)
	})

	t.Run("contact info is redacted", func(t *testing.T) {
		session, b, services := newActive(t)

		msg, err := session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypeTemplate, content(t, "write me at alice@example.com please"), nil, nil)
		require.NoError(t, err)

		assert.True(t, msg.IsFiltered())
		require.NotNil(t, msg.FilteredReason())
		assert.Equal(t, negotiation.FilteredReason, *msg.FilteredReason())
		assert.NotContains(t, msg.Content().String(), "alice@example.com")
		assert.Contains(t, msg.Content().String(), negotiation.RedactionMarker)
	})
}

func TestSessionAccept(t *testing.T) {
	t.Run("seller accepts the standing offer", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session, err := b.BuildDomain()
		require.NoError(t, err)

		offer := int64(7500)
		_, err = session.PostMessage(services, nil, b.BuyerID, negotiation.MessageTypePriceOffer, mustContent(t, "75?"), nil, &offer)
		require.NoError(t, err)

		accepted, err := session.Accept(services, b.SellerID)
		require.NoError(t, err)

		assert.Equal(t, session.ID(), accepted.SessionID)
		assert.Equal(t, offer, accepted.FinalPriceCents)
		assert.Equal(t, negotiation.StatusAccepted, session.Status())
		require.NotNil(t, session.FinalPriceCents())
		assert.Equal(t, offer, *session.FinalPriceCents())
	})

	t.Run("buyer cannot accept", func(t *testing.T) {
		b := builder.NewSessionBuilder().WithOffer(7500)
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.Accept(services, b.BuyerID)
		assert.ErrorIs(t, err, negotiation.ErrNotSeller)
	})

	t.Run("nothing to accept without an offer", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.Accept(services, b.SellerID)
		assert.ErrorIs(t, err, negotiation.ErrNoOffer)
	})

	t.Run("second accept hits the terminal guard", func(t *testing.T) {
		b := builder.NewSessionBuilder().WithOffer(7500)
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.Accept(services, b.SellerID)
		require.NoError(t, err)

		_, err = session.Accept(services, b.SellerID)
		assert.ErrorIs(t, err, negotiation.ErrSessionTerminal)
	})

	t.Run("cannot accept an expired session", func(t *testing.T) {
		b := builder.NewSessionBuilder().WithOffer(7500)
		services, mock := b.Services()
		session := b.BuildReconstructed()

		mock.Add(negotiation.SessionTTL + time.Hour)

		_, err := session.Accept(services, b.SellerID)
		assert.ErrorIs(t, err, negotiation.ErrSessionExpired)
	})
}

func TestSessionReject(t *testing.T) {
	t.Run("either participant may reject", func(t *testing.T) {
		for _, who := range []string{"buyer", "seller"} {
			b := builder.NewSessionBuilder()
			services, _ := b.Services()
			session := b.BuildReconstructed()

			actor := b.BuyerID
			if who == "seller" {
				actor = b.SellerID
			}

			require.NoError(t, session.Reject(services, actor), who)
			assert.Equal(t, negotiation.StatusRejected, session.Status(), who)
		}
	})

	t.Run("outsider cannot reject", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session := b.BuildReconstructed()

		err := session.Reject(services, uuid.New())
		assert.ErrorIs(t, err, negotiation.ErrNotParticipant)
	})
}

func TestSessionReport(t *testing.T) {
	t.Run("participant files a report", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session := b.BuildReconstructed()

		report, err := session.Report(services, b.BuyerID, "  asked me to pay outside the platform  ")
		require.NoError(t, err)

		assert.Equal(t, session.ID(), report.SessionID)
		assert.Equal(t, b.BuyerID, report.ReporterID)
		assert.Equal(t, "asked me to pay outside the platform", report.Reason)
	})

	t.Run("empty reason is rejected", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.Report(services, b.BuyerID, "   ")
		assert.ErrorIs(t, err, negotiation.ErrEmptyReportReason)
	})

	t.Run("outsider cannot report", func(t *testing.T) {
		b := builder.NewSessionBuilder()
		services, _ := b.Services()
		session := b.BuildReconstructed()

		_, err := session.Report(services, uuid.New(), "spam")
		assert.ErrorIs(t, err, negotiation.ErrNotParticipant)
	})
}

func TestEffectiveStatusAt(t *testing.T) {
	b := builder.NewSessionBuilder()
	session := b.BuildReconstructed()

	assert.Equal(t, negotiation.StatusActive, session.EffectiveStatusAt(b.Now))
	assert.Equal(t, negotiation.StatusExpired, session.EffectiveStatusAt(b.Now.Add(negotiation.SessionTTL+time.Second)))

	// Terminal statuses never flip to expired.
	accepted := builder.NewSessionBuilder().WithStatus(negotiation.StatusAccepted).BuildReconstructed()
	assert.Equal(t, negotiation.StatusAccepted, accepted.EffectiveStatusAt(b.Now.Add(negotiation.SessionTTL+time.Second)))
}

func mustContent(t *testing.T, text string) negotiation.Content {
	t.Helper()
	c, err := negotiation.NewContent(text)
	require.NoError(t, err)
	return c
}
