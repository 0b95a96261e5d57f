package professional

import (
	"context"
	"fmt"
	"log"

	"github.com/ignite/professional-directory/internal/domain"
)

// ItemError reports why one batch item was rejected. Index refers to the
// item's position in the submitted batch.
type ItemError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkResult aggregates the outcome of a bulk reconciliation. Every input
// item lands in exactly one of the three buckets, in input order.
type BulkResult struct {
	Created []domain.Professional `json:"created"`
	Updated []domain.Professional `json:"updated"`
	Errors  []ItemError           `json:"errors"`
}

// Reconcile upserts a batch of payloads with strict partial-success
// semantics: items are processed sequentially in input order, one item's
// failure never aborts or alters another item's outcome, and a successful
// write is never rolled back by a later failure. Each item either creates a
// new record, merges into the record its email or phone resolves to, or is
// reported in Errors with its index.
func (s *Service) Reconcile(ctx context.Context, batch []Input) *BulkResult {
	res := &BulkResult{
		Created: []domain.Professional{},
		Updated: []domain.Professional{},
		Errors:  []ItemError{},
	}

	for i, in := range batch {
		rec, created, err := s.reconcileOne(ctx, in)
		if err != nil {
			res.Errors = append(res.Errors, ItemError{Index: i, Reason: err.Error()})
			continue
		}
		if created {
			res.Created = append(res.Created, *rec)
		} else {
			res.Updated = append(res.Updated, *rec)
		}
	}

	return res
}

// reconcileOne runs the per-item pipeline: resolve -> conflict check ->
// identifier strip -> validate -> persist. A panic from the store is
// recovered and reported as the item's error so it cannot take down the
// rest of the batch.
func (s *Service) reconcileOne(ctx context.Context, in Input) (rec *domain.Professional, created bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[professional.Reconcile] recovered panic during persistence: %v", r)
			rec, created = nil, false
			err = fmt.Errorf("persistence failed: %v", r)
		}
	}()

	existing, keyUsed, err := s.resolve(ctx, in)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		if err := Validate(in, false, nil); err != nil {
			return nil, false, err
		}
		rec, err := s.repo.Create(ctx, in.record())
		if err != nil {
			return nil, false, err
		}
		return rec, true, nil
	}

	if err := s.checkConflict(ctx, existing, keyUsed, in); err != nil {
		return nil, false, err
	}

	// Identifiers the record already has are silently dropped from the
	// merge rather than rejected; once set, email and phone never change.
	merge := in
	if existing.HasEmail() {
		merge.Email = nil
	}
	if existing.HasPhone() {
		merge.Phone = nil
	}

	if err := Validate(merge, true, existing); err != nil {
		return nil, false, err
	}

	rec, err = s.repo.Update(ctx, existing.ID, merge.updateFields())
	if err != nil {
		return nil, false, err
	}
	return rec, false, nil
}
