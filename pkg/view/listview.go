// Package view implements the data-view state machines of the store
// controller client: paginated, searchable lists, the QR resolution
// view and the session lifecycle.
package view

import (
	"strings"
)

// PageSize is the fixed number of items rendered per page.
const PageSize = 8

// State enumerates the render states of a view.
type State int

const (
	StateLoading State = iota
	StateLoaded
	StateEmpty
	StateFilteredEmpty
	StateNotFound
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	case StateFilteredEmpty:
		return "filtered-empty"
	case StateNotFound:
		return "not-found"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Item is anything a list view can render and search.
type Item interface {
	EntityID() uint
	SearchFields() (name, description string)
}

// ListView holds a fully fetched collection and derives the filtered,
// paginated slice to render. Filtering happens synchronously over the
// in-memory collection; there is no server round trip.
type ListView[T Item] struct {
	items  []T
	search string
	page   int
	loaded bool
	err    error
}

// NewListView returns a view in the loading state.
func NewListView[T Item]() *ListView[T] {
	return &ListView[T]{page: 1}
}

// SetItems installs a freshly fetched collection and resets to page 1.
func (v *ListView[T]) SetItems(items []T) {
	v.items = items
	v.loaded = true
	v.err = nil
	v.page = 1
}

// Fail moves the view to the terminal error state.
func (v *ListView[T]) Fail(err error) {
	v.err = err
}

// Err returns the error set by Fail, if any.
func (v *ListView[T]) Err() error {
	return v.err
}

// SetSearch updates the search term; a changed term resets to page 1.
func (v *ListView[T]) SetSearch(term string) {
	if term != v.search {
		v.search = term
		v.page = 1
	}
}

// Search returns the current search term.
func (v *ListView[T]) Search() string {
	return v.search
}

// Filtered returns the items whose name or description contains the
// search term, case-insensitively. An empty term matches everything.
func (v *ListView[T]) Filtered() []T {
	if v.search == "" {
		return v.items
	}

	term := strings.ToLower(v.search)
	filtered := make([]T, 0, len(v.items))
	for _, item := range v.items {
		name, description := item.SearchFields()
		if strings.Contains(strings.ToLower(name), term) ||
			strings.Contains(strings.ToLower(description), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// State derives the current render state.
func (v *ListView[T]) State() State {
	switch {
	case v.err != nil:
		return StateError
	case !v.loaded:
		return StateLoading
	case len(v.items) == 0:
		return StateEmpty
	case len(v.Filtered()) == 0:
		return StateFilteredEmpty
	default:
		return StateLoaded
	}
}

// TotalPages returns the number of pages over the filtered collection.
func (v *ListView[T]) TotalPages() int {
	n := len(v.Filtered())
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// CurrentPage returns the requested page, clamped to the filtered
// collection so a shrunken result set never leaves the view past the
// last page.
func (v *ListView[T]) CurrentPage() int {
	total := v.TotalPages()
	if total == 0 {
		return 1
	}
	if v.page > total {
		return total
	}
	return v.page
}

// SetPage requests a page; values below 1 clamp to 1.
func (v *ListView[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Page returns the slice of the filtered collection for the current
// page.
func (v *ListView[T]) Page() []T {
	filtered := v.Filtered()
	start := (v.CurrentPage() - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Remove drops an item from the collection after the server confirmed
// its deletion. Local state changes only after success, never before.
func (v *ListView[T]) Remove(id uint) {
	for i, item := range v.items {
		if item.EntityID() == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			return
		}
	}
}

// Len returns the size of the unfiltered collection.
func (v *ListView[T]) Len() int {
	return len(v.items)
}
