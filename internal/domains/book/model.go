package book

import "github.com/google/uuid"

// GenreRef is a genre reference resolved for display.
type GenreRef struct {
	ID   uuid.UUID
	Name string
}

// Book is a catalog book record. AuthorName and Genres are resolved
// from the referenced records at read time; only AuthorID and the
// genre links are persisted.
type Book struct {
	ID         uuid.UUID
	Title      string
	Summary    string
	ISBN       string
	AuthorID   uuid.UUID
	AuthorName string
	Genres     []GenreRef
}

// URL is the canonical path for this book.
func (b *Book) URL() string {
	return "/catalog/book/" + b.ID.String()
}

// GenreIDs returns the referenced genre ids, used to pre-check
// selections on the update form.
func (b *Book) GenreIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}
