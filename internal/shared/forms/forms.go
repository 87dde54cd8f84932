// Package forms runs the sanitization pipeline each mutating request
// passes through before a handler's business logic: trim, rule check,
// escape, optional-date coercion. Errors are accumulated per field in
// declaration order and never short-circuit, so a re-rendered form can
// show every problem at once.
package forms

import (
	"html"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DateLayout is the wire format for calendar dates posted by forms.
const DateLayout = "2006-01-02"

// FieldError is a single field-scoped validation message.
type FieldError struct {
	Field   string
	Message string
}

// Errors keeps field errors in the order the fields were processed.
type Errors []FieldError

// Has reports whether field collected at least one error.
func (e Errors) Has(field string) bool {
	return e.Get(field) != ""
}

// Get returns the first message recorded for field, "" when clean.
func (e Errors) Get(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Form processes posted values field by field.
type Form struct {
	values url.Values
	errors Errors
}

func New(values url.Values) *Form {
	return &Form{values: values}
}

// Text sanitizes a single-valued field: surrounding whitespace is
// trimmed, the given rules run against the trimmed value, and the value
// comes back with markup-significant characters escaped. The sanitized
// value is returned whether or not the rules passed, so candidates can
// be echoed back on error.
func (f *Form) Text(field string, rules ...validation.Rule) string {
	raw := strings.TrimSpace(f.values.Get(field))
	if err := validation.Validate(raw, rules...); err != nil {
		f.Add(field, err.Error())
	}
	return html.EscapeString(raw)
}

// Date parses an optional calendar date. An empty value means absent,
// not invalid; a malformed value records a field error and counts as
// absent.
func (f *Form) Date(field string) *time.Time {
	raw := strings.TrimSpace(f.values.Get(field))
	if raw == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		f.Add(field, "must be a valid date (YYYY-MM-DD)")
		return nil
	}
	return &t
}

// ID parses a reference selection into a UUID. Rules run on the trimmed
// raw value so Required can reject an empty selection; a non-empty value
// that is not a UUID records a field error.
func (f *Form) ID(field string, rules ...validation.Rule) uuid.UUID {
	raw := strings.TrimSpace(f.values.Get(field))
	if err := validation.Validate(raw, rules...); err != nil {
		f.Add(field, err.Error())
		return uuid.Nil
	}
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		f.Add(field, "must be a valid identifier")
		return uuid.Nil
	}
	return id
}

// IDList normalizes a multi-valued reference field: an absent field
// becomes an empty list, a single value a one-element list, and
// list-shaped input passes through unchanged. Malformed entries record
// one field error and are dropped.
func (f *Form) IDList(field string) []uuid.UUID {
	raw, ok := f.values[field]
	if !ok {
		return []uuid.UUID{}
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			if !f.errors.Has(field) {
				f.Add(field, "contains an invalid identifier")
			}
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// Add records a field-scoped error message.
func (f *Form) Add(field, message string) {
	f.errors = append(f.errors, FieldError{Field: field, Message: message})
}

// Valid reports whether no field collected an error.
func (f *Form) Valid() bool {
	return len(f.errors) == 0
}

// Errors returns the collected errors in field-processing order.
func (f *Form) Errors() Errors {
	return f.errors
}
