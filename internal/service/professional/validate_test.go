package professional_test

import (
	"testing"

	"github.com/ignite/professional-directory/internal/domain"
	"github.com/ignite/professional-directory/internal/service/professional"
)

func strPtr(s string) *string { return &s }

func TestValidateEmailFormats(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"alice@techcorp.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"USER_99%x@A-B.io", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@nodomain.com", false},
		{"spaces in@local.com", false},
		{"x@y.c", false}, // single-letter TLD
	}

	for _, c := range cases {
		err := professional.Validate(professional.Input{Email: strPtr(c.email)}, false, nil)
		if c.ok && err != nil {
			t.Errorf("email %q: expected valid, got %v", c.email, err)
		}
		if !c.ok && err != professional.ErrInvalidEmail {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", c.email, err)
		}
	}
}

func TestValidatePhoneFormats(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"5551001001", true},
		{"+1 555 100 1001", true},
		{"555-100-1001", true},
		{"+44 (20) 7946 0958", true},
		{"555.100.1001", true},
		{"111", true},
		{"call-me-maybe", false},
		{"++12345", false},
	}

	for _, c := range cases {
		err := professional.Validate(professional.Input{Phone: strPtr(c.phone)}, false, nil)
		if c.ok && err != nil {
			t.Errorf("phone %q: expected valid, got %v", c.phone, err)
		}
		if !c.ok && err != professional.ErrInvalidPhone {
			t.Errorf("phone %q: expected ErrInvalidPhone, got %v", c.phone, err)
		}
	}
}

func TestValidateMissingIdentifier(t *testing.T) {
	err := professional.Validate(professional.Input{FullName: strPtr("No Contact")}, false, nil)
	if err != professional.ErrMissingIdentifier {
		t.Fatalf("expected ErrMissingIdentifier, got %v", err)
	}

	// Present-but-empty identifiers count as absent.
	err = professional.Validate(professional.Input{Email: strPtr(""), Phone: strPtr("")}, false, nil)
	if err != professional.ErrMissingIdentifier {
		t.Fatalf("expected ErrMissingIdentifier for empty strings, got %v", err)
	}
}

func TestValidatePartialFallsBackToExisting(t *testing.T) {
	existing := &domain.Professional{ID: "p1", Email: "alice@techcorp.com"}

	// The payload has no identifier of its own, but the record it updates
	// does, so the presence check passes.
	err := professional.Validate(professional.Input{FullName: strPtr("Alice J")}, true, existing)
	if err != nil {
		t.Fatalf("expected valid partial update, got %v", err)
	}

	// Without an existing record the same payload fails.
	err = professional.Validate(professional.Input{FullName: strPtr("Alice J")}, true, nil)
	if err != professional.ErrMissingIdentifier {
		t.Fatalf("expected ErrMissingIdentifier, got %v", err)
	}
}

func TestValidateFormatAppliesToSuppliedValueOnly(t *testing.T) {
	existing := &domain.Professional{ID: "p1", Email: "alice@techcorp.com"}

	// A bad phone in the payload fails even though the existing email would
	// satisfy the presence check.
	err := professional.Validate(professional.Input{Phone: strPtr("junk")}, true, existing)
	if err != professional.ErrInvalidPhone {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}
