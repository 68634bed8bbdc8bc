package negotiation

import (
	"strings"

	"haggle-service/internal/pkg/errs"
)

var (
	ErrInvalidPrice      = errs.New("price must be positive")
	ErrEmptyContent      = errs.New("message content cannot be empty")
	ErrContentTooLong    = errs.New("message content exceeds maximum length")
	ErrEmptyReportReason = errs.New("report reason cannot be empty")
)

const MaxContentLength = 2000

// MinimumPriceCents returns the lowest acceptable final price for a listing:
// 70% of the original price, rounded down.
func MinimumPriceCents(originalPriceCents int64) int64 {
	return originalPriceCents * 7 / 10
}

type Content string

func NewContent(text string) (Content, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyContent
	}
	if len(text) > MaxContentLength {
		return "", ErrContentTooLong
	}
	return Content(text), nil
}

func (c Content) String() string {
	return string(c)
}
