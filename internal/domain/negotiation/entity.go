package negotiation

import (
	"time"

	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionTerminal    = errs.New("negotiation is no longer active")
	ErrSessionExpired     = errs.New("negotiation has expired")
	ErrNotParticipant     = errs.New("user is not a participant of this negotiation")
	ErrNotSeller          = errs.New("only the seller can accept an offer")
	ErrNoOffer            = errs.New("no price offer to accept")
	ErrSameParty          = errs.New("buyer and seller cannot be the same user")
	ErrOfferBelowMinimum  = errs.New("offer is below the minimum price")
	ErrOfferMissing       = errs.New("price offer is required for this message type")
	ErrSessionBlocked     = errs.New("negotiation is blocked by moderation")
	ErrRateLimitExceeded  = errs.New("message rate limit exceeded")
	ErrInvalidMessageType = errs.New("invalid message type")
)

// SessionTTL is how long a negotiation stays open after creation. Expiry is a
// derived predicate: no write is needed for a session to become expired.
const SessionTTL = 7 * 24 * time.Hour

type Services struct {
	Clock   clock.Clock
	Filter  *ContentFilter
	Limiter *RateLimiter
}

type Session struct {
	id                 uuid.UUID
	itemID             uuid.UUID
	buyerID            uuid.UUID
	sellerID           uuid.UUID
	status             Status
	originalPriceCents int64
	minimumPriceCents  int64
	currentOfferCents  *int64
	finalPriceCents    *int64
	buyerMessageCount  int32
	sellerMessageCount int32
	offerCount         int32
	lastBuyerMessage   *time.Time
	lastSellerMessage  *time.Time
	isBlocked          bool
	createdAt          time.Time
	lastActivity       time.Time
	expiresAt          time.Time
	version            int64
}

func NewSession(services *Services, itemID, buyerID, sellerID uuid.UUID, originalPriceCents int64) (*Session, error) {
	if originalPriceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if buyerID == sellerID {
		return nil, ErrSameParty
	}

	now := services.Clock.Now()
	return &Session{
		id:                 uuid.New(),
		itemID:             itemID,
		buyerID:            buyerID,
		sellerID:           sellerID,
		status:             StatusActive,
		originalPriceCents: originalPriceCents,
		minimumPriceCents:  MinimumPriceCents(originalPriceCents),
		createdAt:          now,
		lastActivity:       now,
		expiresAt:          now.Add(SessionTTL),
		version:            1,
	}, nil
}

func ReconstructSession(
	id, itemID, buyerID, sellerID uuid.UUID,
	status Status,
	originalPriceCents, minimumPriceCents int64,
	currentOfferCents, finalPriceCents *int64,
	buyerMessageCount, sellerMessageCount, offerCount int32,
	lastBuyerMessage, lastSellerMessage *time.Time,
	isBlocked bool,
	createdAt, lastActivity, expiresAt time.Time,
	version int64,
) *Session {
	return &Session{
		id:                 id,
		itemID:             itemID,
		buyerID:            buyerID,
		sellerID:           sellerID,
		status:             status,
		originalPriceCents: originalPriceCents,
		minimumPriceCents:  minimumPriceCents,
		currentOfferCents:  currentOfferCents,
		finalPriceCents:    finalPriceCents,
		buyerMessageCount:  buyerMessageCount,
		sellerMessageCount: sellerMessageCount,
		offerCount:         offerCount,
		lastBuyerMessage:   lastBuyerMessage,
		lastSellerMessage:  lastSellerMessage,
		isBlocked:          isBlocked,
		createdAt:          createdAt,
		lastActivity:       lastActivity,
		expiresAt:          expiresAt,
		version:            version,
	}
}

func (s *Session) IsParticipant(userID uuid.UUID) bool {
	return userID == s.buyerID || userID == s.sellerID
}

// IsExpiredAt is the lazy expiry check: a session past its deadline is
// observably expired even if the stored status still reads active.
func (s *Session) IsExpiredAt(now time.Time) bool {
	return now.After(s.expiresAt)
}

// EffectiveStatusAt folds lazy expiry into the stored status for read models.
func (s *Session) EffectiveStatusAt(now time.Time) Status {
	if s.status == StatusActive && s.IsExpiredAt(now) {
		return StatusExpired
	}
	return s.status
}

func (s *Session) guardActive(now time.Time) error {
	if s.status.IsTerminal() {
		return ErrSessionTerminal
	}
	if s.IsExpiredAt(now) {
		return ErrSessionExpired
	}
	return nil
}

// PostMessage runs the content filter and rate limiter, then appends the
// message and updates offer state and counters. The returned message carries
// the filtered content; the raw text is never stored.
func (s *Session) PostMessage(
	services *Services,
	recent []MessageStamp,
	sender uuid.UUID,
	messageType MessageType,
	content Content,
	templateID *string,
	priceOfferCents *int64,
) (*Message, error) {
	now := services.Clock.Now()

	if err := s.guardActive(now); err != nil {
		return nil, err
	}
	if s.isBlocked {
		return nil, ErrSessionBlocked
	}
	if !s.IsParticipant(sender) {
		return nil, ErrNotParticipant
	}
	if !messageType.IsValid() {
		return nil, ErrInvalidMessageType
	}
	if messageType.CarriesOffer() && priceOfferCents == nil {
		return nil, ErrOfferMissing
	}
	if priceOfferCents != nil && *priceOfferCents <= 0 {
		return nil, ErrInvalidPrice
	}

	// A rejected attempt is not appended and does not touch counters.
	if !services.Limiter.Allow(recent, sender, now) {
		return nil, ErrRateLimitExceeded
	}

	filtered := services.Filter.Filter(content.String())
	var filteredReason *string
	if filtered.Filtered {
		reason := filtered.Reason
		filteredReason = &reason
	}

	msg := &Message{
		id:             uuid.New(),
		sessionID:      s.id,
		sender:         sender,
		messageType:    messageType,
		content:        Content(filtered.Content),
		templateID:     templateID,
		priceOffer:     priceOfferCents,
		isFiltered:     filtered.Filtered,
		filteredReason: filteredReason,
		createdAt:      now,
	}

	if messageType.CarriesOffer() {
		offer := *priceOfferCents
		s.currentOfferCents = &offer
		s.offerCount++
	}

	if sender == s.buyerID {
		s.buyerMessageCount++
		t := now
		s.lastBuyerMessage = &t
	} else {
		s.sellerMessageCount++
		t := now
		s.lastSellerMessage = &t
	}
	s.lastActivity = now

	return msg, nil
}

// Accepted is the event produced by a successful accept transition.
type Accepted struct {
	SessionID       uuid.UUID
	FinalPriceCents int64
	AcceptedAt      time.Time
}

// Accept moves the session to accepted and fixes the final price at the
// current offer. Only the seller may accept.
func (s *Session) Accept(services *Services, actor uuid.UUID) (*Accepted, error) {
	now := services.Clock.Now()

	if err := s.guardActive(now); err != nil {
		return nil, err
	}
	if actor != s.sellerID {
		return nil, ErrNotSeller
	}
	if s.currentOfferCents == nil {
		return nil, ErrNoOffer
	}

	final := *s.currentOfferCents
	s.status = StatusAccepted
	s.finalPriceCents = &final
	s.lastActivity = now

	return &Accepted{
		SessionID:       s.id,
		FinalPriceCents: final,
		AcceptedAt:      now,
	}, nil
}

// Reject moves the session to rejected. Either participant may reject.
func (s *Session) Reject(services *Services, actor uuid.UUID) error {
	now := services.Clock.Now()

	if err := s.guardActive(now); err != nil {
		return err
	}
	if !s.IsParticipant(actor) {
		return ErrNotParticipant
	}

	s.status = StatusRejected
	s.lastActivity = now
	return nil
}

// Report records a moderation report. Setting isBlocked is a moderation
// decision made outside this core; the flag is only exposed here.
type Report struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	ReporterID uuid.UUID
	Reason     string
	CreatedAt  time.Time
}

func (s *Session) Report(services *Services, reporter uuid.UUID, reason string) (*Report, error) {
	if !s.IsParticipant(reporter) {
		return nil, ErrNotParticipant
	}
	trimmed, err := NewContent(reason)
	if err != nil {
		return nil, ErrEmptyReportReason
	}
	return &Report{
		ID:         uuid.New(),
		SessionID:  s.id,
		ReporterID: reporter,
		Reason:     trimmed.String(),
		CreatedAt:  services.Clock.Now(),
	}, nil
}

func (s *Session) ID() uuid.UUID                 { return s.id }
func (s *Session) ItemID() uuid.UUID             { return s.itemID }
func (s *Session) BuyerID() uuid.UUID            { return s.buyerID }
func (s *Session) SellerID() uuid.UUID           { return s.sellerID }
func (s *Session) Status() Status                { return s.status }
func (s *Session) OriginalPriceCents() int64     { return s.originalPriceCents }
func (s *Session) MinimumPriceCents() int64      { return s.minimumPriceCents }
func (s *Session) CurrentOfferCents() *int64     { return s.currentOfferCents }
func (s *Session) FinalPriceCents() *int64       { return s.finalPriceCents }
func (s *Session) BuyerMessageCount() int32      { return s.buyerMessageCount }
func (s *Session) SellerMessageCount() int32     { return s.sellerMessageCount }
func (s *Session) OfferCount() int32             { return s.offerCount }
func (s *Session) LastBuyerMessage() *time.Time  { return s.lastBuyerMessage }
func (s *Session) LastSellerMessage() *time.Time { return s.lastSellerMessage }
func (s *Session) IsBlocked() bool               { return s.isBlocked }
func (s *Session) CreatedAt() time.Time          { return s.createdAt }
func (s *Session) LastActivity() time.Time       { return s.lastActivity }
func (s *Session) ExpiresAt() time.Time          { return s.expiresAt }
func (s *Session) Version() int64                { return s.version }
