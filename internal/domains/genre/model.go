package genre

import "github.com/google/uuid"

// Genre is a book classification. Names are unique; uniqueness is
// checked by exact-match lookup before insert and backed by a unique
// index so the check/act window cannot produce duplicates.
type Genre struct {
	ID   uuid.UUID
	Name string
}

// URL is the canonical path for this genre.
func (g *Genre) URL() string {
	return "/catalog/genre/" + g.ID.String()
}
