package professional

import (
	"regexp"

	"github.com/ignite/professional-directory/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Lenient international format: optional +, optional short digit groups
	// separated by -, . or space, optional parenthesized area code. Accepts
	// bare short numbers like "111".
	phonePattern = regexp.MustCompile(`^\+?[0-9]{0,4}[-.\s]?\(?[0-9]{0,3}\)?[-.\s]?[0-9]{0,4}[-.\s]?[0-9]{0,4}[-.\s]?[0-9]{1,9}$`)
)

// Validate checks identifier presence and format for an incoming payload.
//
// On a partial update against an existing record, a missing email or phone
// falls back to the record's current value for the presence check only; the
// existing value is never re-applied to the payload. Format checks run
// against the values the payload actually supplies.
func Validate(in Input, partial bool, existing *domain.Professional) error {
	email := strVal(in.Email)
	phone := strVal(in.Phone)

	if partial && existing != nil {
		if email == "" {
			email = existing.Email
		}
		if phone == "" {
			phone = existing.Phone
		}
	}

	if email == "" && phone == "" {
		return ErrMissingIdentifier
	}

	if has(in.Email) && !emailPattern.MatchString(*in.Email) {
		return ErrInvalidEmail
	}
	if has(in.Phone) && !phonePattern.MatchString(*in.Phone) {
		return ErrInvalidPhone
	}
	return nil
}
