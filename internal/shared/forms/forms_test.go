package forms

import (
	"net/url"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var required = []validation.Rule{
	validation.Required.Error("must be specified"),
}

func TestTextTrimsAndEscapes(t *testing.T) {
	f := New(url.Values{"title": {"  The <Hobbit> & Back  "}})

	got := f.Text("title", required...)

	assert.Equal(t, "The &lt;Hobbit&gt; &amp; Back", got)
	assert.True(t, f.Valid())
}

func TestTextRequiredFailsOnWhitespaceOnly(t *testing.T) {
	f := New(url.Values{"title": {"   "}})

	got := f.Text("title", required...)

	assert.Equal(t, "", got)
	assert.False(t, f.Valid())
	assert.Equal(t, "must be specified", f.Errors().Get("title"))
}

func TestTextReturnsSanitizedValueEvenWhenInvalid(t *testing.T) {
	f := New(url.Values{"name": {" ab "}})

	got := f.Text("name", validation.Length(3, 100).Error("too short"))

	// The candidate must still carry the submitted value so the form
	// can be re-rendered with it.
	assert.Equal(t, "ab", got)
	assert.Equal(t, "too short", f.Errors().Get("name"))
}

func TestErrorsAreCollectedInFieldOrder(t *testing.T) {
	f := New(url.Values{})

	f.Text("first_name", required...)
	f.Text("family_name", required...)
	f.Date("date_of_birth")

	errs := f.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "first_name", errs[0].Field)
	assert.Equal(t, "family_name", errs[1].Field)
}

func TestDateEmptyMeansAbsent(t *testing.T) {
	f := New(url.Values{"due_back": {""}})

	got := f.Date("due_back")

	assert.Nil(t, got)
	assert.True(t, f.Valid())
}

func TestDateParsesISO(t *testing.T) {
	f := New(url.Values{"due_back": {" 2024-06-01 "}})

	got := f.Date("due_back")

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *got)
	assert.True(t, f.Valid())
}

func TestDateMalformedRecordsError(t *testing.T) {
	f := New(url.Values{"due_back": {"junk"}})

	got := f.Date("due_back")

	assert.Nil(t, got)
	assert.True(t, f.Errors().Has("due_back"))
}

func TestIDParsesSelection(t *testing.T) {
	id := uuid.New()
	f := New(url.Values{"author": {id.String()}})

	got := f.ID("author", required...)

	assert.Equal(t, id, got)
	assert.True(t, f.Valid())
}

func TestIDRequiredFailsOnEmpty(t *testing.T) {
	f := New(url.Values{})

	got := f.ID("author", required...)

	assert.Equal(t, uuid.Nil, got)
	assert.True(t, f.Errors().Has("author"))
}

func TestIDListNormalization(t *testing.T) {
	one := uuid.New()
	two := uuid.New()

	tests := []struct {
		name   string
		values url.Values
		want   []uuid.UUID
	}{
		{"absent becomes empty list", url.Values{}, []uuid.UUID{}},
		{"single value becomes one-element list", url.Values{"genre": {one.String()}}, []uuid.UUID{one}},
		{"list-shaped input passes through", url.Values{"genre": {one.String(), two.String()}}, []uuid.UUID{one, two}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.values)
			assert.Equal(t, tt.want, f.IDList("genre"))
			assert.True(t, f.Valid())
		})
	}
}

func TestIDListDropsMalformedEntries(t *testing.T) {
	one := uuid.New()
	f := New(url.Values{"genre": {one.String(), "junk"}})

	got := f.IDList("genre")

	assert.Equal(t, []uuid.UUID{one}, got)
	assert.True(t, f.Errors().Has("genre"))
}
