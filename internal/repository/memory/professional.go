// Package memory provides an in-memory professional.Repository used by dev
// mode, the seed CLI, and unit tests. Semantics mirror the Postgres
// implementation, including duplicate-identifier detection at write time.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/professional-directory/internal/domain"
	"github.com/ignite/professional-directory/internal/service/professional"
)

// ProfessionalRepo implements professional.Repository over a mutex-guarded
// map. The single mutex serializes every read-check-write sequence, which
// gives the same per-record race guarantees the Postgres transaction does.
type ProfessionalRepo struct {
	mu      sync.Mutex
	records map[string]*domain.Professional
}

// NewProfessionalRepo creates an empty in-memory repository.
func NewProfessionalRepo() *ProfessionalRepo {
	return &ProfessionalRepo{records: make(map[string]*domain.Professional)}
}

func (r *ProfessionalRepo) Get(_ context.Context, id string) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return nil, professional.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProfessionalRepo) List(_ context.Context, f professional.Filter) ([]domain.Professional, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Professional
	for _, p := range r.records {
		if f.Source != "" && string(p.Source) != f.Source {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	total := len(out)
	if f.Offset >= len(out) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(out) || f.Limit <= 0 {
		end = len(out)
	}
	return out[f.Offset:end], total, nil
}

func matchesSearch(p *domain.Professional, q string) bool {
	q = strings.ToLower(q)
	for _, field := range []string{p.FullName, p.Email, p.CompanyName, p.JobTitle, p.Phone} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (r *ProfessionalRepo) FindByField(_ context.Context, field professional.IdentifierField, value string) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.findLocked(field, value, ""); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, professional.ErrNotFound
}

func (r *ProfessionalRepo) ExistsByField(_ context.Context, field professional.IdentifierField, value, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(field, value, excludeID) != nil, nil
}

// findLocked returns the record holding the identifier value, skipping
// excludeID. Empty values never match; callers must hold r.mu.
func (r *ProfessionalRepo) findLocked(field professional.IdentifierField, value, excludeID string) *domain.Professional {
	if value == "" {
		return nil
	}
	for _, p := range r.records {
		if p.ID == excludeID {
			continue
		}
		switch field {
		case professional.FieldEmail:
			if p.Email == value {
				return p
			}
		case professional.FieldPhone:
			if p.Phone == value {
				return p
			}
		}
	}
	return nil
}

func (r *ProfessionalRepo) Create(_ context.Context, p *domain.Professional) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.Email != "" && r.findLocked(professional.FieldEmail, p.Email, "") != nil {
		return nil, professional.ErrDuplicateEmail
	}
	if p.Phone != "" && r.findLocked(professional.FieldPhone, p.Phone, "") != nil {
		return nil, professional.ErrDuplicatePhone
	}

	cp := *p
	cp.ID = uuid.New().String()
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.records[cp.ID] = &cp

	out := cp
	return &out, nil
}

func (r *ProfessionalRepo) Update(_ context.Context, id string, u professional.UpdateFields) (*domain.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.records[id]
	if !ok {
		return nil, professional.ErrNotFound
	}

	if u.Email != nil && *u.Email != "" && r.findLocked(professional.FieldEmail, *u.Email, id) != nil {
		return nil, professional.ErrDuplicateEmail
	}
	if u.Phone != nil && *u.Phone != "" && r.findLocked(professional.FieldPhone, *u.Phone, id) != nil {
		return nil, professional.ErrDuplicatePhone
	}

	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.CompanyName != nil {
		p.CompanyName = *u.CompanyName
	}
	if u.JobTitle != nil {
		p.JobTitle = *u.JobTitle
	}
	if u.Source != nil {
		p.Source = domain.Source(*u.Source)
	}
	p.UpdatedAt = time.Now().UTC()

	cp := *p
	return &cp, nil
}

func (r *ProfessionalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return professional.ErrNotFound
	}
	delete(r.records, id)
	return nil
}
