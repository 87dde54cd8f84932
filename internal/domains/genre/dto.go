package genre

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/forms"
)

var nameRules = []validation.Rule{
	validation.Required.Error("Genre name must be specified."),
	validation.Length(3, 0).Error("Genre name must contain at least 3 characters."),
	validation.Length(0, 100).Error("Genre name must not exceed 100 characters."),
}

// Form is the candidate genre built from a submitted form.
type Form struct {
	ID   uuid.UUID
	Name string
}

// Bind runs the sanitization pipeline over posted values.
func Bind(values url.Values) (Form, forms.Errors) {
	f := forms.New(values)
	candidate := Form{
		Name: f.Text("name", nameRules...),
	}
	return candidate, f.Errors()
}

// Validate re-checks the declared constraints on the candidate.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, nameRules...),
	)
}

func (f Form) Model() *Genre {
	return &Genre{ID: f.ID, Name: f.Name}
}
