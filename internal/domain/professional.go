package domain

import "time"

// Source enumerates where a professional record originated.
type Source string

const (
	SourceDirect   Source = "direct"
	SourcePartner  Source = "partner"
	SourceInternal Source = "internal"
)

// IsValid reports whether s is one of the known sources.
func (s Source) IsValid() bool {
	switch s {
	case SourceDirect, SourcePartner, SourceInternal:
		return true
	}
	return false
}

// Professional represents a single contact record in the directory.
//
// Email and Phone are the two identifier fields: each is optional, but every
// record must carry at least one, and a non-empty value is unique across the
// store and immutable once set. Both invariants are enforced by the service
// layer, not the store.
type Professional struct {
	ID          string    `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Email       string    `json:"email,omitempty" db:"email"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	CompanyName string    `json:"company_name" db:"company_name"`
	JobTitle    string    `json:"job_title" db:"job_title"`
	Source      Source    `json:"source" db:"source"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// HasEmail reports whether the record has a non-empty email.
func (p *Professional) HasEmail() bool { return p.Email != "" }

// HasPhone reports whether the record has a non-empty phone.
func (p *Professional) HasPhone() bool { return p.Phone != "" }
