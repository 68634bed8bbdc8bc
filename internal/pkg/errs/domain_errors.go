package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Negotiation errors
	ErrNegotiationNotFound    = errors.New("negotiation not found")
	ErrDuplicateActiveSession = errors.New("an active negotiation already exists for this item and buyer")
	ErrSessionTerminal        = errors.New("negotiation is no longer active")
	ErrSessionExpired         = errors.New("negotiation has expired")
	ErrRateLimited            = errors.New("message rate limit exceeded")
	ErrNotParticipant         = errors.New("user is not a participant of this negotiation")
	ErrNotAuthorized          = errors.New("user is not authorized for this action")
	ErrNoOfferToAccept        = errors.New("no price offer to accept")

	// Settlement token errors
	ErrTokenNotFound    = errors.New("discount code not found")
	ErrTokenAlreadyUsed = errors.New("discount code already used")
	ErrTokenExpired     = errors.New("discount code expired")
	ErrTokenNotValid    = errors.New("discount code is not valid")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
