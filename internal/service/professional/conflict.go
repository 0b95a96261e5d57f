package professional

import (
	"context"

	"github.com/ignite/professional-directory/internal/domain"
)

// checkConflict decides whether merging an incoming payload into a resolved
// record is safe, returning the rejection reason when it is not. It writes
// nothing; the only I/O is uniqueness lookups for an identifier being set
// for the first time.
func (s *Service) checkConflict(ctx context.Context, existing *domain.Professional, keyUsed IdentifierField, in Input) error {
	switch keyUsed {
	case FieldEmail:
		// A matching email with a different company is more likely a
		// separate organization's submission than an update to this record.
		if in.CompanyName != nil && *in.CompanyName != existing.CompanyName {
			return ErrEmailCompanyConflict
		}
		if has(in.Phone) && existing.HasPhone() {
			if *in.Phone != existing.Phone {
				return ErrPhoneImmutable
			}
			return nil
		}
		if has(in.Phone) {
			taken, err := s.repo.ExistsByField(ctx, FieldPhone, *in.Phone, existing.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrPhoneTaken
			}
		}

	case FieldPhone:
		// A record already identified by email must not be touched by a
		// phone-only submission.
		if existing.HasEmail() && !has(in.Email) {
			return ErrPhoneOnlyUpdate
		}
		if has(in.Email) && !existing.HasEmail() {
			taken, err := s.repo.ExistsByField(ctx, FieldEmail, *in.Email, existing.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
		}
	}

	return nil
}
