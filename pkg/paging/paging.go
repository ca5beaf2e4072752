// Package paging provides page window math for directory listings.
package paging

// Descriptor describes one page of a larger result set.
type Descriptor struct {
	// Page is the requested page number, clamped to 1 at minimum.
	Page int
	// PerPage is the number of items per page.
	PerPage int
	// TotalItems is the size of the full result set.
	TotalItems int64
	// TotalPages is the number of pages needed for TotalItems.
	TotalPages int
}

// New builds a descriptor for one page over a result set of totalItems.
// Page numbers below 1 are clamped to 1 so the computed offset is never
// negative. Pages past the end stay as requested: they address an empty
// window while TotalPages remains correct.
func New(page, perPage int, totalItems int64) Descriptor {
	if page < 1 {
		page = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	return Descriptor{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: PageCount(totalItems, perPage),
	}
}

// NewFloored is New with the page count floored at one, for rosters that
// must always present at least one page even when empty.
func NewFloored(page, perPage int, totalItems int64) Descriptor {
	d := New(page, perPage, totalItems)
	if d.TotalPages < 1 {
		d.TotalPages = 1
	}
	return d
}

// PageCount returns ceil(totalItems / perPage).
func PageCount(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(perPage) - 1) / int64(perPage))
}

// Offset returns the zero-based index of the first item on the page.
func (d Descriptor) Offset() int {
	page := d.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * d.PerPage
}

// Stop returns the inclusive upper bound for range-based store reads.
func (d Descriptor) Stop() int {
	return d.Offset() + d.PerPage - 1
}

// End returns the exclusive upper bound for slicing a materialized set.
func (d Descriptor) End() int {
	return d.Offset() + d.PerPage
}

// Window slices the page described by d out of a fully materialized
// result set. Windows past the end of items yield an empty slice.
func Window[T any](items []T, d Descriptor) []T {
	start := d.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := d.End()
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
