package models

// Page is one page of a paginated list. Pages are 1-indexed.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	TotalPages int
}

// HasNext reports whether a page after p exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// Availability is a page of reports for one drug or one pharmacy. Subject
// holds the drug or pharmacy the reports belong to, when the backend
// returned it.
type Availability[S any] struct {
	Subject *S
	Reports Page[AvailabilityReport]
}
