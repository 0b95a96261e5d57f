package professional

import (
	"context"

	"github.com/ignite/professional-directory/internal/domain"
)

// Service implements professional-record business logic. It coordinates
// validation, identity resolution, and conflict policy on top of the
// repository layer. All public methods are safe for concurrent use if the
// underlying repository is concurrency-safe.
type Service struct {
	repo Repository
}

// NewService creates a professional service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns a single record.
func (s *Service) Get(ctx context.Context, id string) (*domain.Professional, error) {
	return s.repo.Get(ctx, id)
}

// List returns records matching the filter plus the unpaginated total.
func (s *Service) List(ctx context.Context, f Filter) ([]domain.Professional, int, error) {
	return s.repo.List(ctx, f)
}

// Create validates and persists a new record. Unlike the bulk path, direct
// creation requires the full set of profile fields.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Professional, error) {
	if strVal(in.FullName) == "" {
		return nil, &RequiredFieldError{Field: "full_name"}
	}
	if strVal(in.CompanyName) == "" {
		return nil, &RequiredFieldError{Field: "company_name"}
	}
	if strVal(in.JobTitle) == "" {
		return nil, &RequiredFieldError{Field: "job_title"}
	}
	if !domain.Source(strVal(in.Source)).IsValid() {
		return nil, ErrInvalidSource
	}

	if err := Validate(in, false, nil); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in, ""); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, in.record())
}

// Update applies a partial update to an existing record. Identifier
// uniqueness is enforced against all other records; unlike the bulk
// reconciler, a direct update may overwrite an identifier.
func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Professional, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Source != nil && !domain.Source(*in.Source).IsValid() {
		return nil, ErrInvalidSource
	}
	if err := Validate(in, true, existing); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in, existing.ID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, in.updateFields())
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// checkUnique rejects identifier values already held by a record other than
// excludeID.
func (s *Service) checkUnique(ctx context.Context, in Input, excludeID string) error {
	if has(in.Email) {
		taken, err := s.repo.ExistsByField(ctx, FieldEmail, *in.Email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}
	}
	if has(in.Phone) {
		taken, err := s.repo.ExistsByField(ctx, FieldPhone, *in.Phone, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicatePhone
		}
	}
	return nil
}
