package professional_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ignite/professional-directory/internal/service/professional"
)

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	rec, err := svc.Create(context.Background(), professional.Input{
		FullName:    strPtr("Alice Johnson"),
		Email:       strPtr("alice@techcorp.com"),
		CompanyName: strPtr("TechCorp"),
		JobTitle:    strPtr("Software Engineer"),
		Source:      strPtr("direct"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected store-assigned id")
	}
	if rec.Source != "direct" {
		t.Fatalf("expected direct source, got %s", rec.Source)
	}
}

func TestCreateRequiredFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), professional.Input{
		Email: strPtr("a@b.co"),
	})
	var rf *professional.RequiredFieldError
	if !errors.As(err, &rf) {
		t.Fatalf("expected RequiredFieldError, got %v", err)
	}
}

func TestCreateInvalidSource(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), professional.Input{
		FullName:    strPtr("X"),
		Email:       strPtr("x@a.com"),
		CompanyName: strPtr("Co"),
		JobTitle:    strPtr("Dev"),
		Source:      strPtr("scraped"),
	})
	if err != professional.ErrInvalidSource {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	in := professional.Input{
		FullName:    strPtr("X"),
		Email:       strPtr("x@a.com"),
		CompanyName: strPtr("Co"),
		JobTitle:    strPtr("Dev"),
		Source:      strPtr("direct"),
	}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	in.FullName = strPtr("Y")
	_, err := svc.Create(context.Background(), in)
	if err != professional.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Get(context.Background(), "nonexistent")
	if !errors.Is(err, professional.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newTestService()

	rec, err := svc.Create(context.Background(), professional.Input{
		FullName:    strPtr("Bob Smith"),
		Email:       strPtr("bob@innovate.io"),
		CompanyName: strPtr("Innovate.io"),
		JobTitle:    strPtr("Product Manager"),
		Source:      strPtr("partner"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Update(context.Background(), rec.ID, professional.Input{
		JobTitle: strPtr("Director of Product"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.JobTitle != "Director of Product" {
		t.Fatalf("job title not updated: %+v", got)
	}
	if got.FullName != "Bob Smith" || got.Email != "bob@innovate.io" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if !got.UpdatedAt.After(rec.UpdatedAt) && !got.UpdatedAt.Equal(rec.UpdatedAt) {
		t.Fatalf("updated_at not refreshed: %v -> %v", rec.UpdatedAt, got.UpdatedAt)
	}
}

func TestUpdateDuplicatePhoneExcludesSelf(t *testing.T) {
	svc, _ := newTestService()

	a, _ := svc.Create(context.Background(), professional.Input{
		FullName: strPtr("A"), Phone: strPtr("111222"),
		CompanyName: strPtr("Co"), JobTitle: strPtr("Dev"), Source: strPtr("direct"),
	})
	svc.Create(context.Background(), professional.Input{
		FullName: strPtr("B"), Phone: strPtr("333444"),
		CompanyName: strPtr("Co"), JobTitle: strPtr("Dev"), Source: strPtr("direct"),
	})

	// Re-submitting a record's own phone is not a duplicate.
	if _, err := svc.Update(context.Background(), a.ID, professional.Input{Phone: strPtr("111222")}); err != nil {
		t.Fatalf("self-phone update: %v", err)
	}

	// Another record's phone is.
	_, err := svc.Update(context.Background(), a.ID, professional.Input{Phone: strPtr("333444")})
	if err != professional.ErrDuplicatePhone {
		t.Fatalf("expected ErrDuplicatePhone, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService()

	rec, _ := svc.Create(context.Background(), professional.Input{
		FullName: strPtr("Gone"), Email: strPtr("gone@a.com"),
		CompanyName: strPtr("Co"), JobTitle: strPtr("Dev"), Source: strPtr("direct"),
	})

	if err := svc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), rec.ID); !errors.Is(err, professional.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestListWithSourceFilter(t *testing.T) {
	svc, _ := newTestService()

	mk := func(name, email, source string) {
		_, err := svc.Create(context.Background(), professional.Input{
			FullName: strPtr(name), Email: strPtr(email),
			CompanyName: strPtr("Co"), JobTitle: strPtr("Dev"), Source: strPtr(source),
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	mk("A", "a@a.com", "direct")
	mk("B", "b@a.com", "partner")
	mk("C", "c@a.com", "partner")

	list, total, err := svc.List(context.Background(), professional.Filter{Source: "partner", Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("expected 2 partner records, got %d (total %d)", len(list), total)
	}
	for _, p := range list {
		if p.Source != "partner" {
			t.Fatalf("filter leaked record: %+v", p)
		}
	}
}

func TestListSearch(t *testing.T) {
	svc, _ := newTestService()

	svc.Create(context.Background(), professional.Input{
		FullName: strPtr("Grace Kim"), Email: strPtr("grace@analytics.ai"),
		CompanyName: strPtr("Analytics AI"), JobTitle: strPtr("ML Engineer"), Source: strPtr("internal"),
	})
	svc.Create(context.Background(), professional.Input{
		FullName: strPtr("Henry Chen"), Email: strPtr("henry@fintech.com"),
		CompanyName: strPtr("FinTech Corp"), JobTitle: strPtr("Backend Engineer"), Source: strPtr("partner"),
	})

	list, total, err := svc.List(context.Background(), professional.Filter{Search: "fintech", Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].FullName != "Henry Chen" {
		t.Fatalf("unexpected search result: %+v", list)
	}
}
