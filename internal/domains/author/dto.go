package author

import (
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/forms"
)

// Field constraints are declared once here; the form pipeline and the
// pre-persistence Validate run the same rules.
var (
	firstNameRules = []validation.Rule{
		validation.Required.Error("First name must be specified."),
		validation.Length(1, 100).Error("First name must not exceed 100 characters."),
	}
	familyNameRules = []validation.Rule{
		validation.Required.Error("Family name must be specified."),
		validation.Length(1, 100).Error("Family name must not exceed 100 characters."),
	}
)

// Form is the candidate author built from a submitted create/update
// form. On update it carries the original record id so persistence
// replaces in place instead of minting a new identifier.
type Form struct {
	ID          uuid.UUID
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Bind runs the sanitization pipeline over posted values. The candidate
// is returned even when invalid so the form re-render can echo it.
func Bind(values url.Values) (Form, forms.Errors) {
	f := forms.New(values)
	candidate := Form{
		FirstName:   f.Text("first_name", firstNameRules...),
		FamilyName:  f.Text("family_name", familyNameRules...),
		DateOfBirth: f.Date("date_of_birth"),
		DateOfDeath: f.Date("date_of_death"),
	}
	return candidate, f.Errors()
}

// Validate re-checks the declared constraints on the candidate itself.
// Services run it before persisting so storage never depends on the
// form pipeline having run.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName, firstNameRules...),
		validation.Field(&f.FamilyName, familyNameRules...),
	)
}

// Model converts the candidate into a persistable record.
func (f Form) Model() *Author {
	return &Author{
		ID:          f.ID,
		FirstName:   f.FirstName,
		FamilyName:  f.FamilyName,
		DateOfBirth: f.DateOfBirth,
		DateOfDeath: f.DateOfDeath,
	}
}
