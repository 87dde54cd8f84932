package bookinstance

import (
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/shared/dates"
)

// Status is the loan state of a physical copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses lists the valid states in display order for the form select.
func Statuses() []Status {
	return []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}
}

// BookInstance is a physical copy of a book. BookTitle is resolved from
// the referenced book at read time. DueBack is optional and not coupled
// to Status.
type BookInstance struct {
	ID        uuid.UUID
	BookID    uuid.UUID
	BookTitle string
	Imprint   string
	Status    Status
	DueBack   *time.Time
}

// URL is the canonical path for this copy.
func (bi *BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID.String()
}

func (bi *BookInstance) DueBackFormatted() string {
	return dates.Display(bi.DueBack)
}

func (bi *BookInstance) DueBackISO() string {
	return dates.ISO(bi.DueBack)
}
