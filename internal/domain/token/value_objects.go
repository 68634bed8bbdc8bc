package token

import (
	"crypto/rand"
	"regexp"
	"strings"

	"haggle-service/internal/pkg/errs"
)

var (
	ErrInvalidCode = errs.New("invalid discount code format")
)

const (
	// CodePrefix is fixed; the random part is 8 uppercase alphanumerics.
	CodePrefix       = "HGL-"
	codeRandomLength = 8
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var codeRegex = regexp.MustCompile(`^HGL-[A-Z0-9]{8}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// GenerateCode builds a candidate code. Uniqueness is enforced by the store;
// the caller retries on collision.
func GenerateCode() (Code, error) {
	buf := make([]byte, codeRandomLength)
	if _, err := rand.Read(buf); err != nil {
		return Code(""), errs.Wrap(err, "failed to read random bytes for code")
	}
	var b strings.Builder
	b.WriteString(CodePrefix)
	for _, v := range buf {
		b.WriteByte(codeAlphabet[int(v)%len(codeAlphabet)])
	}
	return Code(b.String()), nil
}
