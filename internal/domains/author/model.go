package author

import (
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/shared/dates"
)

// Author is a catalog author record. The derived display values are
// computed on read and never persisted.
type Author struct {
	ID          uuid.UUID
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Name returns the display name "FamilyName, FirstName", or "" when
// either part is missing so templates never show a dangling comma.
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// URL is the canonical path for this author, used for post-mutation
// redirects.
func (a *Author) URL() string {
	return "/catalog/author/" + a.ID.String()
}

// Lifespan renders "birth - death" with open ends left blank.
func (a *Author) Lifespan() string {
	return dates.Range(a.DateOfBirth, a.DateOfDeath)
}

func (a *Author) DateOfBirthFormatted() string {
	return dates.Display(a.DateOfBirth)
}

func (a *Author) DateOfBirthISO() string {
	return dates.ISO(a.DateOfBirth)
}

func (a *Author) DateOfDeathFormatted() string {
	return dates.Display(a.DateOfDeath)
}

func (a *Author) DateOfDeathISO() string {
	return dates.ISO(a.DateOfDeath)
}
