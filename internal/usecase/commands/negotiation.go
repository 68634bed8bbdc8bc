package commands

import (
	"context"
	"errors"

	"haggle-service/internal/domain/negotiation"
	"haggle-service/internal/domain/token"
	reqdto "haggle-service/internal/handler/dto/request"
	"haggle-service/internal/infra"
	"haggle-service/internal/infra/repository"
	"haggle-service/internal/pkg/clock"
	"haggle-service/internal/pkg/errs"
	"haggle-service/internal/usecase/queries"
	"haggle-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxCodeAttempts bounds the collision retry loop during token issuance.
const maxCodeAttempts = 5

type NegotiationCommands interface {
	Open(ctx context.Context, req reqdto.OpenNegotiationRequest, buyerID uuid.UUID) (*queries.SessionView, error)
	PostMessage(ctx context.Context, sessionID uuid.UUID, req reqdto.PostMessageRequest, senderID uuid.UUID) (*queries.MessageView, error)
	Accept(ctx context.Context, sessionID, actorID uuid.UUID) (*queries.TokenView, error)
	Reject(ctx context.Context, sessionID, actorID uuid.UUID) error
	Report(ctx context.Context, sessionID uuid.UUID, req reqdto.ReportSessionRequest, reporterID uuid.UUID) error
}

type negotiationCommandsImpl struct {
	sessionRepo SessionRepository
	tokenRepo   TokenRepository
	services    *negotiation.Services
	db          *pgxpool.Pool
	clock       clock.Clock
}

func NewNegotiationCommands(
	sessionRepo SessionRepository,
	tokenRepo TokenRepository,
	services *negotiation.Services,
	db *pgxpool.Pool,
	clock clock.Clock,
) NegotiationCommands {
	return &negotiationCommandsImpl{
		sessionRepo: sessionRepo,
		tokenRepo:   tokenRepo,
		services:    services,
		db:          db,
		clock:       clock,
	}
}

func (c *negotiationCommandsImpl) Open(ctx context.Context, req reqdto.OpenNegotiationRequest, buyerID uuid.UUID) (*queries.SessionView, error) {
	session, err := negotiation.NewSession(c.services, req.ItemID, buyerID, req.SellerID, req.OriginalPriceCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.sessionRepo.Create(ctx, c.db, session); err != nil {
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// The blocking row may be a dormant session that expired without any
		// write ever flipping its status. Clear it and retry once; a blocker
		// that is still within its deadline stays a genuine duplicate.
		flipped, expireErr := c.sessionRepo.ExpireStaleActive(ctx, c.db, req.ItemID, buyerID, c.clock.Now())
		if expireErr != nil {
			return nil, errs.Mark(expireErr, errs.ErrDatabaseOperationFailed)
		}
		if !flipped {
			return nil, errs.Mark(err, errs.ErrDuplicateActiveSession)
		}

		if err := c.sessionRepo.Create(ctx, c.db, session); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, errs.Mark(err, errs.ErrDuplicateActiveSession)
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	view := toSessionView(session)
	return &view, nil
}

func (c *negotiationCommandsImpl) PostMessage(ctx context.Context, sessionID uuid.UUID, req reqdto.PostMessageRequest, senderID uuid.UUID) (*queries.MessageView, error) {
	content, err := negotiation.NewContent(req.Content)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	msg, err := shared.WithDefaultRetry(ctx, c.db, func(tx repository.DBTX) (*negotiation.Message, error) {
		session, err := c.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			return nil, mapSessionLookupErr(err)
		}

		since := c.clock.Now().Add(-negotiation.RateLimitWindow)
		recent, err := c.sessionRepo.RecentStamps(ctx, tx, sessionID, since)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		msg, err := session.PostMessage(c.services, recent, senderID, negotiation.MessageType(req.Type), content, req.GetTemplateID(), req.PriceOfferCents)
		if err != nil {
			return nil, mapDomainErr(err)
		}

		if err := c.sessionRepo.Update(ctx, tx, session); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.sessionRepo.AppendMessage(ctx, tx, msg); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return msg, nil
	})
	if err != nil {
		return nil, err
	}

	view := toMessageView(msg)
	return &view, nil
}

// Accept flips the session to accepted and issues the settlement token in one
// transaction. The status flip is an atomic conditional update: the losing
// racer of two concurrent accepts gets the already-issued token back instead
// of a second token.
func (c *negotiationCommandsImpl) Accept(ctx context.Context, sessionID, actorID uuid.UUID) (*queries.TokenView, error) {
	issued, err := shared.RunInTx(ctx, c.db, func(tx repository.DBTX) (*token.SettlementToken, error) {
		session, err := c.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			return nil, mapSessionLookupErr(err)
		}

		accepted, err := session.Accept(c.services, actorID)
		if err != nil {
			if existing := c.existingTokenFor(ctx, tx, session, err); existing != nil {
				return existing, nil
			}
			return nil, mapDomainErr(err)
		}

		won, err := c.sessionRepo.AcceptIfActive(ctx, tx, sessionID, accepted.FinalPriceCents, accepted.AcceptedAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !won {
			// Lost the transition race; surface the winner's token if one exists.
			fresh, err := c.sessionRepo.FindByID(ctx, tx, sessionID)
			if err != nil {
				return nil, mapSessionLookupErr(err)
			}
			if fresh.Status() == negotiation.StatusAccepted {
				return c.tokenRepo.FindBySessionID(ctx, tx, sessionID)
			}
			return nil, errs.ErrSessionTerminal
		}

		return c.issueToken(ctx, tx, session, accepted)
	})
	if err != nil {
		return nil, err
	}

	view := queries.ToTokenView(issued)
	return &view, nil
}

// existingTokenFor resolves the idempotent accept outcome: a session that is
// already accepted returns its token rather than an error.
func (c *negotiationCommandsImpl) existingTokenFor(ctx context.Context, tx repository.DBTX, session *negotiation.Session, domainErr error) *token.SettlementToken {
	if !errors.Is(domainErr, negotiation.ErrSessionTerminal) {
		return nil
	}
	if session.Status() != negotiation.StatusAccepted {
		return nil
	}
	existing, err := c.tokenRepo.FindBySessionID(ctx, tx, session.ID())
	if err != nil {
		return nil
	}
	return existing
}

func (c *negotiationCommandsImpl) issueToken(ctx context.Context, tx repository.DBTX, session *negotiation.Session, accepted *negotiation.Accepted) (*token.SettlementToken, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := token.GenerateCode()
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		issued, err := token.NewSettlementToken(
			code,
			session.ID(), session.ItemID(), session.BuyerID(), session.SellerID(),
			session.OriginalPriceCents(), accepted.FinalPriceCents,
			accepted.AcceptedAt,
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}

		createErr := c.tokenRepo.Create(ctx, tx, issued)
		if createErr == nil {
			return issued, nil
		}
		if errors.Is(createErr, repository.ErrCodeCollision) {
			continue
		}
		if errors.Is(createErr, repository.ErrTokenAlreadyBound) {
			// Another issuance won; at most one token per session stands.
			return c.tokenRepo.FindBySessionID(ctx, tx, session.ID())
		}
		return nil, errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
	}
	return nil, errs.New("failed to generate a unique discount code")
}

func (c *negotiationCommandsImpl) Reject(ctx context.Context, sessionID, actorID uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.db, func(tx repository.DBTX) (struct{}, error) {
		session, err := c.sessionRepo.FindByID(ctx, tx, sessionID)
		if err != nil {
			return struct{}{}, mapSessionLookupErr(err)
		}

		if err := session.Reject(c.services, actorID); err != nil {
			return struct{}{}, mapDomainErr(err)
		}

		if err := c.sessionRepo.Update(ctx, tx, session); err != nil {
			return struct{}{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (c *negotiationCommandsImpl) Report(ctx context.Context, sessionID uuid.UUID, req reqdto.ReportSessionRequest, reporterID uuid.UUID) error {
	session, err := c.sessionRepo.FindByID(ctx, c.db, sessionID)
	if err != nil {
		return mapSessionLookupErr(err)
	}

	report, err := session.Report(c.services, reporterID, req.Reason)
	if err != nil {
		return mapDomainErr(err)
	}

	if err := c.sessionRepo.InsertReport(ctx, c.db, report); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func mapSessionLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNegotiationNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, negotiation.ErrSessionTerminal), errors.Is(err, negotiation.ErrSessionBlocked):
		return errs.Mark(err, errs.ErrSessionTerminal)
	case errors.Is(err, negotiation.ErrSessionExpired):
		return errs.Mark(err, errs.ErrSessionExpired)
	case errors.Is(err, negotiation.ErrRateLimitExceeded):
		return errs.Mark(err, errs.ErrRateLimited)
	case errors.Is(err, negotiation.ErrNotParticipant):
		return errs.Mark(err, errs.ErrNotParticipant)
	case errors.Is(err, negotiation.ErrNotSeller):
		return errs.Mark(err, errs.ErrNotAuthorized)
	case errors.Is(err, negotiation.ErrNoOffer):
		return errs.Mark(err, errs.ErrNoOfferToAccept)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func toSessionView(s *negotiation.Session) queries.SessionView {
	return queries.SessionView{
		ID:                 s.ID(),
		ItemID:             s.ItemID(),
		BuyerID:            s.BuyerID(),
		SellerID:           s.SellerID(),
		Status:             s.Status().String(),
		OriginalPriceCents: s.OriginalPriceCents(),
		MinimumPriceCents:  s.MinimumPriceCents(),
		CurrentOfferCents:  s.CurrentOfferCents(),
		FinalPriceCents:    s.FinalPriceCents(),
		BuyerMessageCount:  s.BuyerMessageCount(),
		SellerMessageCount: s.SellerMessageCount(),
		OfferCount:         s.OfferCount(),
		IsBlocked:          s.IsBlocked(),
		CreatedAt:          s.CreatedAt(),
		LastActivity:       s.LastActivity(),
		ExpiresAt:          s.ExpiresAt(),
	}
}

func toMessageView(m *negotiation.Message) queries.MessageView {
	return queries.MessageView{
		ID:              m.ID(),
		SessionID:       m.SessionID(),
		SenderID:        m.Sender(),
		Type:            m.Type().String(),
		Content:         m.Content().String(),
		TemplateID:      m.TemplateID(),
		PriceOfferCents: m.PriceOffer(),
		IsFiltered:      m.IsFiltered(),
		FilteredReason:  m.FilteredReason(),
		CreatedAt:       m.CreatedAt(),
	}
}
