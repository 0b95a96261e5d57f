package professional

import (
	"context"
	"errors"

	"github.com/ignite/professional-directory/internal/domain"
)

// resolve finds the existing record an incoming payload refers to, and which
// identifier field located it. Email takes priority: when the payload
// carries an email, only the email lookup runs, and a miss means the item
// takes the create path even if the phone would have matched. A payload with
// neither identifier resolves to nothing.
func (s *Service) resolve(ctx context.Context, in Input) (*domain.Professional, IdentifierField, error) {
	if has(in.Email) {
		p, err := s.repo.FindByField(ctx, FieldEmail, *in.Email)
		if err == nil {
			return p, FieldEmail, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, "", err
		}
		return nil, "", nil
	}

	if has(in.Phone) {
		p, err := s.repo.FindByField(ctx, FieldPhone, *in.Phone)
		if err == nil {
			return p, FieldPhone, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, "", err
		}
	}

	return nil, "", nil
}
