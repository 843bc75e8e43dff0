package form

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/everhold/everhold/models"
)

// validateSubmission enforces the field rules every materialized submission
// must satisfy before it reaches the service layer. Rule failures are
// wrapped in [ErrValidation].
func validateSubmission(s *models.PageSubmission) error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.PageType, validation.Required, validation.By(func(value any) error {
			if !models.ValidPageType(string(value.(models.PageType))) {
				return validation.NewError("page_type_unknown", "must be MEMORIAL, BIOGRAPHY or AUTOBIOGRAPHY")
			}
			return nil
		})),
		validation.Field(&s.Slug, models.SlugRule...),
		validation.Field(&s.HonoureeName, validation.Required),
		validation.Field(&s.DateOfBirth, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if s.DateOfPassing != nil && !s.HasTransitioned {
		return invalidField("dateOfPassing", "requires hasTransitioned")
	}

	for idx, quote := range s.Quotes {
		if quote.Text == "" {
			return invalidField(fmt.Sprintf("quotes[%d][text]", idx), "is required")
		}
	}
	for idx, rel := range s.Relationships {
		if rel.Name == "" {
			return invalidField(fmt.Sprintf("relationships[%d][name]", idx), "is required")
		}
	}

	return nil
}
