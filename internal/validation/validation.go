// Package validation normalizes and validates account input: nicknames,
// passwords and required fields. Every function is pure and safe for
// concurrent use; failures wrap common.ErrorValidation.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/bloghub/internal/common"
)

const (
	// MinNicknameLength is the shortest accepted nickname after normalization.
	MinNicknameLength = 3
	// MaxNicknameLength and MaxNameLength match the users table columns.
	MaxNicknameLength = 50
	MaxNameLength     = 100
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 5
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var nicknamePattern = regexp.MustCompile(`^[a-z_-]+$`)

// Error is a validation failure on a single field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return common.ErrorValidation
}

func invalid(field, format string, args ...any) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NormalizeNickname lower-cases raw and removes spaces, then checks length
// and alphabet. Normalizing an already normalized nickname returns it as is.
func NormalizeNickname(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalid("nickname", "Nickname cannot be empty.")
	}

	nickname := strings.ReplaceAll(strings.ToLower(raw), " ", "")

	if len(nickname) < MinNicknameLength {
		return "", invalid("nickname", "Nickname must be at least %d characters long.", MinNicknameLength)
	}

	if len(nickname) > MaxNicknameLength {
		return "", invalid("nickname", "Nickname must be at most %d characters long.", MaxNicknameLength)
	}

	if !nicknamePattern.MatchString(nickname) {
		return "", invalid("nickname", "Nickname can only contain letters (a-z), hyphens (-), and underscores (_).")
	}

	return nickname, nil
}

// NormalizeName trims surrounding whitespace and checks the name fits the
// column.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)

	if name == "" {
		return "", invalid("name", "Name cannot be empty.")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", invalid("name", "Name must be at most %d characters long.", MaxNameLength)
	}

	return name, nil
}

// NormalizePassword trims surrounding whitespace and enforces the length
// policy.
func NormalizePassword(raw string) (string, error) {
	password := strings.TrimSpace(raw)

	if password == "" {
		return "", invalid("password", "Password cannot be empty.")
	}

	if len([]rune(password)) < MinPasswordLength {
		return "", invalid("password", "Password must be at least %d characters long.", MinPasswordLength)
	}

	if len(password) > MaxPasswordBytes {
		return "", invalid("password", "Password must be at most %d bytes long.", MaxPasswordBytes)
	}

	return password, nil
}
