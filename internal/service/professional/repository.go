package professional

import (
	"context"

	"github.com/ignite/professional-directory/internal/domain"
)

// IdentifierField names one of the two fields a record can be looked up by.
type IdentifierField string

const (
	FieldEmail IdentifierField = "email"
	FieldPhone IdentifierField = "phone"
)

// Repository defines the data access contract for professional records.
// Implementations must be safe for concurrent use, and Create/Update must
// serialize each record's read-check-write sequence so that a lost
// uniqueness race surfaces as ErrDuplicateEmail/ErrDuplicatePhone rather
// than a partial write.
type Repository interface {
	// Get returns a single record. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Professional, error)

	// List returns records matching the filter plus the unpaginated total,
	// ordered by created_at DESC.
	List(ctx context.Context, f Filter) ([]domain.Professional, int, error)

	// FindByField returns the record whose identifier field equals value.
	// Returns ErrNotFound when no record holds the value.
	FindByField(ctx context.Context, field IdentifierField, value string) (*domain.Professional, error)

	// ExistsByField reports whether a record other than excludeID holds the
	// given identifier value. Pass excludeID == "" to consider all records.
	ExistsByField(ctx context.Context, field IdentifierField, value, excludeID string) (bool, error)

	// Create inserts a new record, assigning its ID and timestamps.
	Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error)

	// Update applies only the non-nil fields to an existing record and
	// refreshes its updated_at timestamp.
	Update(ctx context.Context, id string, u UpdateFields) (*domain.Professional, error)

	// Delete removes a record. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error
}

// Filter controls filtering and pagination for record lists.
type Filter struct {
	Source string // exact match on source when non-empty
	Search string // substring match over name/email/company/title/phone
	Limit  int
	Offset int
}

// UpdateFields holds the mutable fields for a partial update.
// Nil fields are not applied.
type UpdateFields struct {
	FullName    *string
	Email       *string
	Phone       *string
	CompanyName *string
	JobTitle    *string
	Source      *string
}
