package professional

import "errors"

// Sentinel errors for the professional service layer. The message text of
// the validation and conflict errors is part of the API contract: bulk
// responses surface these strings verbatim in the per-item errors array.
var (
	ErrNotFound = errors.New("professional not found")

	// Validation errors.
	ErrMissingIdentifier = errors.New("Either email or phone is required.")
	ErrInvalidEmail      = errors.New("Please enter a valid email address.")
	ErrInvalidPhone      = errors.New("Please enter a valid phone number.")

	// Uniqueness errors, also returned by repositories that lose a
	// unique-constraint race at insert/update time.
	ErrDuplicateEmail = errors.New("A professional with this email already exists.")
	ErrDuplicatePhone = errors.New("A professional with this phone already exists.")

	// Conflict errors raised by the bulk merge policy.
	ErrEmailCompanyConflict = errors.New("Duplicate email already exists")
	ErrPhoneImmutable       = errors.New("Phone conflict: cannot change phone on existing record")
	ErrPhoneTaken           = errors.New("Phone already exists")
	ErrEmailTaken           = errors.New("Email already exists")
	ErrPhoneOnlyUpdate      = errors.New("Cannot update identified user via phone-only payload")

	ErrInvalidSource = errors.New("source must be one of direct, partner, internal")
)

// RequiredFieldError reports a missing required field on direct create.
type RequiredFieldError struct{ Field string }

func (e *RequiredFieldError) Error() string { return e.Field + " is required" }
