package professional

import "github.com/ignite/professional-directory/internal/domain"

// Input is one incoming payload, from the single-record endpoints or one
// item of a bulk batch. Pointer fields distinguish "absent" from "present
// but empty"; the partial-update merge logic relies on that distinction.
type Input struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CompanyName *string `json:"company_name"`
	JobTitle    *string `json:"job_title"`
	Source      *string `json:"source"`
}

// has reports whether an optional field is present with a non-empty value.
func has(s *string) bool { return s != nil && *s != "" }

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// updateFields converts the input into a partial-update field set.
func (in Input) updateFields() UpdateFields {
	return UpdateFields{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		JobTitle:    in.JobTitle,
		Source:      in.Source,
	}
}

// record builds a new domain record from the input. ID and timestamps are
// assigned by the repository. Source falls back to "direct" when absent.
func (in Input) record() *domain.Professional {
	src := domain.Source(strVal(in.Source))
	if src == "" {
		src = domain.SourceDirect
	}
	return &domain.Professional{
		FullName:    strVal(in.FullName),
		Email:       strVal(in.Email),
		Phone:       strVal(in.Phone),
		CompanyName: strVal(in.CompanyName),
		JobTitle:    strVal(in.JobTitle),
		Source:      src,
	}
}
