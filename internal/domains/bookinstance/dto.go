package bookinstance

import (
	"errors"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/forms"
)

var (
	bookRules = []validation.Rule{
		validation.Required.Error("Book must be specified."),
	}
	imprintRules = []validation.Rule{
		validation.Required.Error("Imprint must be specified."),
	}
	statusRules = []validation.Rule{
		validation.Required.Error("Status must be specified."),
		validation.In(
			string(StatusAvailable),
			string(StatusMaintenance),
			string(StatusLoaned),
			string(StatusReserved),
		).Error("Status must be one of Available, Maintenance, Loaned or Reserved."),
	}
)

// Form is the candidate copy built from a submitted form. An empty
// due_back binds as absent, never as an error.
type Form struct {
	ID      uuid.UUID
	BookID  uuid.UUID
	Imprint string
	Status  Status
	DueBack *time.Time
}

// Bind runs the sanitization pipeline over posted values.
func Bind(values url.Values) (Form, forms.Errors) {
	f := forms.New(values)
	candidate := Form{
		BookID:  f.ID("book", bookRules...),
		Imprint: f.Text("imprint", imprintRules...),
		Status:  Status(f.Text("status", statusRules...)),
		DueBack: f.Date("due_back"),
	}
	return candidate, f.Errors()
}

// Validate re-checks the declared constraints on the candidate.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.BookID, validation.By(requiredID("Book must be specified."))),
		validation.Field(&f.Imprint, imprintRules...),
		validation.Field(&f.Status, validation.By(validStatus)),
	)
}

func requiredID(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
			return errors.New(msg)
		}
		return nil
	}
}

func validStatus(value interface{}) error {
	s, _ := value.(Status)
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errors.New("Status must be one of Available, Maintenance, Loaned or Reserved.")
}

func (f Form) Model() *BookInstance {
	return &BookInstance{
		ID:      f.ID,
		BookID:  f.BookID,
		Imprint: f.Imprint,
		Status:  f.Status,
		DueBack: f.DueBack,
	}
}
