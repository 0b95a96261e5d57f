// Package postgres implements professional.Repository against PostgreSQL
// using hand-written SQL. Email and phone are stored as NULL when empty so
// the table's unique constraints only bind non-empty values.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ignite/professional-directory/internal/domain"
	"github.com/ignite/professional-directory/internal/service/professional"
)

// ProfessionalRepo implements professional.Repository against PostgreSQL.
type ProfessionalRepo struct{ db *sql.DB }

// NewProfessionalRepo creates a Postgres-backed professional repository.
func NewProfessionalRepo(db *sql.DB) *ProfessionalRepo { return &ProfessionalRepo{db: db} }

const selectColumns = `id, full_name, COALESCE(email,''), COALESCE(phone,''),
	       company_name, job_title, source, created_at, updated_at`

func scanProfessional(row interface{ Scan(...interface{}) error }) (*domain.Professional, error) {
	p := &domain.Professional{}
	err := row.Scan(
		&p.ID, &p.FullName, &p.Email, &p.Phone,
		&p.CompanyName, &p.JobTitle, &p.Source, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfessionalRepo) Get(ctx context.Context, id string) (*domain.Professional, error) {
	p, err := scanProfessional(r.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM professionals
		WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, professional.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return p, nil
}

func (r *ProfessionalRepo) List(ctx context.Context, f professional.Filter) ([]domain.Professional, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	where := []string{"1=1"}
	args := []interface{}{}
	idx := 1

	if f.Source != "" {
		where = append(where, fmt.Sprintf("source = $%d", idx))
		args = append(args, f.Source)
		idx++
	}
	if f.Search != "" {
		where = append(where, fmt.Sprintf(
			"(full_name ILIKE $%d OR email ILIKE $%d OR company_name ILIKE $%d OR job_title ILIKE $%d OR phone ILIKE $%d)",
			idx, idx, idx, idx, idx))
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM professionals WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count professionals: %w", err)
	}

	q := fmt.Sprintf(`
		SELECT `+selectColumns+`
		FROM professionals
		WHERE %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, cond, idx, idx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	var out []domain.Professional
	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan professional: %w", err)
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func (r *ProfessionalRepo) FindByField(ctx context.Context, field professional.IdentifierField, value string) (*domain.Professional, error) {
	col, err := identifierColumn(field)
	if err != nil {
		return nil, err
	}
	p, err := scanProfessional(r.db.QueryRowContext(ctx, `
		SELECT `+selectColumns+`
		FROM professionals
		WHERE `+col+` = $1
	`, value))
	if err == sql.ErrNoRows {
		return nil, professional.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find professional by %s: %w", field, err)
	}
	return p, nil
}

func (r *ProfessionalRepo) ExistsByField(ctx context.Context, field professional.IdentifierField, value, excludeID string) (bool, error) {
	col, err := identifierColumn(field)
	if err != nil {
		return false, err
	}
	var exists bool
	err = r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM professionals
			WHERE `+col+` = $1 AND ($2 = '' OR id::text <> $2)
		)
	`, value, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check %s uniqueness: %w", field, err)
	}
	return exists, nil
}

func (r *ProfessionalRepo) Create(ctx context.Context, p *domain.Professional) (*domain.Professional, error) {
	id := p.ID
	if id == "" {
		id = uuid.New().String()
	}
	created, err := scanProfessional(r.db.QueryRowContext(ctx, `
		INSERT INTO professionals
			(id, full_name, email, phone, company_name, job_title, source, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3,''), NULLIF($4,''), $5, $6, $7, NOW(), NOW())
		RETURNING `+selectColumns+`
	`, id, p.FullName, p.Email, p.Phone, p.CompanyName, p.JobTitle, p.Source))
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("create professional: %w", err)
	}
	return created, nil
}

// Update applies the non-nil fields inside a transaction that locks the
// target row first, so the read-check-write sequence for one record is
// serialized against concurrent batches.
func (r *ProfessionalRepo) Update(ctx context.Context, id string, u professional.UpdateFields) (*domain.Professional, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM professionals WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err == sql.ErrNoRows {
		return nil, professional.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock professional: %w", err)
	}

	sets := []string{}
	args := []interface{}{}
	idx := 1
	add := func(col, expr string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = %s", col, fmt.Sprintf(expr, idx)))
		args = append(args, val)
		idx++
	}

	if u.FullName != nil {
		add("full_name", "$%d", *u.FullName)
	}
	if u.Email != nil {
		add("email", "NULLIF($%d,'')", *u.Email)
	}
	if u.Phone != nil {
		add("phone", "NULLIF($%d,'')", *u.Phone)
	}
	if u.CompanyName != nil {
		add("company_name", "$%d", *u.CompanyName)
	}
	if u.JobTitle != nil {
		add("job_title", "$%d", *u.JobTitle)
	}
	if u.Source != nil {
		add("source", "$%d", *u.Source)
	}
	sets = append(sets, "updated_at = NOW()")

	q := fmt.Sprintf(`
		UPDATE professionals SET %s
		WHERE id = $%d
		RETURNING `+selectColumns, strings.Join(sets, ", "), idx)
	args = append(args, id)

	updated, err := scanProfessional(tx.QueryRowContext(ctx, q, args...))
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("update professional: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return updated, nil
}

func (r *ProfessionalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM professionals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete professional: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return professional.ErrNotFound
	}
	return nil
}

func identifierColumn(field professional.IdentifierField) (string, error) {
	switch field {
	case professional.FieldEmail:
		return "email", nil
	case professional.FieldPhone:
		return "phone", nil
	}
	return "", fmt.Errorf("unknown identifier field %q", field)
}

// mapUniqueViolation translates a Postgres unique-constraint error (a lost
// race against a concurrent writer) into the service's duplicate sentinels
// so the bulk reconciler reports it as a per-item error.
func mapUniqueViolation(err error) error {
	pqErr, ok := err.(*pq.Error)
	if !ok || pqErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pqErr.Constraint, "phone") {
		return professional.ErrDuplicatePhone
	}
	return professional.ErrDuplicateEmail
}
