package author

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindSanitizes(t *testing.T) {
	values := url.Values{
		"first_name":    {"  Ursula <K.>  "},
		"family_name":   {" Le Guin "},
		"date_of_birth": {"1929-10-21"},
		"date_of_death": {""},
	}

	candidate, errs := Bind(values)

	require.Empty(t, errs)
	assert.Equal(t, "Ursula &lt;K.&gt;", candidate.FirstName)
	assert.Equal(t, "Le Guin", candidate.FamilyName)
	require.NotNil(t, candidate.DateOfBirth)
	assert.Equal(t, "1929-10-21", candidate.DateOfBirth.Format("2006-01-02"))
	assert.Nil(t, candidate.DateOfDeath)
}

func TestBindCollectsAllErrors(t *testing.T) {
	candidate, errs := Bind(url.Values{})

	require.Len(t, errs, 2)
	assert.Equal(t, "first_name", errs[0].Field)
	assert.Equal(t, "family_name", errs[1].Field)
	assert.Equal(t, "", candidate.FirstName)
}

func TestBindRejectsOverlongNames(t *testing.T) {
	values := url.Values{
		"first_name":  {strings.Repeat("a", 101)},
		"family_name": {"Smith"},
	}

	_, errs := Bind(values)

	require.Len(t, errs, 1)
	assert.Equal(t, "first_name", errs[0].Field)
}

func TestValidateMatchesBindRules(t *testing.T) {
	// The declared constraints run identically whether the candidate
	// came through the form pipeline or not.
	valid := Form{FirstName: "Ursula", FamilyName: "Le Guin"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Form{FamilyName: "Le Guin"}.Validate())
	assert.Error(t, Form{FirstName: "Ursula"}.Validate())
	assert.Error(t, Form{FirstName: strings.Repeat("a", 101), FamilyName: "x"}.Validate())
}
