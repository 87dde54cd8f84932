package book

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/forms"
)

var (
	titleRules = []validation.Rule{
		validation.Required.Error("Title must not be empty."),
	}
	summaryRules = []validation.Rule{
		validation.Required.Error("Summary must not be empty."),
	}
	isbnRules = []validation.Rule{
		validation.Required.Error("ISBN must not be empty."),
	}
	authorRules = []validation.Rule{
		validation.Required.Error("Author must be specified."),
	}
)

// Form is the candidate book built from a submitted form. GenreIDs is
// always list-shaped: absent selections bind as an empty list, a single
// checkbox as a one-element list.
type Form struct {
	ID       uuid.UUID
	Title    string
	Summary  string
	ISBN     string
	AuthorID uuid.UUID
	GenreIDs []uuid.UUID
}

// Bind runs the sanitization pipeline over posted values.
func Bind(values url.Values) (Form, forms.Errors) {
	f := forms.New(values)
	candidate := Form{
		Title:    f.Text("title", titleRules...),
		AuthorID: f.ID("author", authorRules...),
		Summary:  f.Text("summary", summaryRules...),
		ISBN:     f.Text("isbn", isbnRules...),
		GenreIDs: f.IDList("genre"),
	}
	return candidate, f.Errors()
}

// Validate re-checks the declared constraints on the candidate. The
// author reference is checked with a rule of its own since by this
// point it is a parsed id, not the posted string the pipeline saw.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, titleRules...),
		validation.Field(&f.AuthorID, validation.By(requiredID("Author must be specified."))),
		validation.Field(&f.Summary, summaryRules...),
		validation.Field(&f.ISBN, isbnRules...),
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

// HasGenre reports whether the candidate carries the genre, used to
// re-check selected options when the form is re-rendered.
func (f Form) HasGenre(id uuid.UUID) bool {
	for _, g := range f.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

func (f Form) Model() *Book {
	return &Book{
		ID:       f.ID,
		Title:    f.Title,
		Summary:  f.Summary,
		ISBN:     f.ISBN,
		AuthorID: f.AuthorID,
	}
}
