package pagination

// Pager owns the current-page state for an in-memory collection and
// derives page bounds from the backing slice on every access. The slice
// may be replaced at any time (filter change, re-fetch); the pager never
// caches a stale copy and never points past the end: if the collection
// shrank below the current page, the next read snaps back to page 1.
type Pager[T any] struct {
	items []T
	size  int
	page  int
}

// NewPager creates a pager over items with the given page size.
// A size below 1 falls back to DefaultLimit.
func NewPager[T any](items []T, size int) *Pager[T] {
	if size < 1 {
		size = DefaultLimit
	}
	return &Pager[T]{items: items, size: size, page: 1}
}

// SetItems replaces the backing collection. The current page is kept;
// the out-of-range guard applies on the next read.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
}

// clamp resets the page to 1 when it points past the end
func (p *Pager[T]) clamp() {
	if p.page > p.TotalPages() {
		p.page = 1
	}
}

// Page returns the current page (1-indexed)
func (p *Pager[T]) Page() int {
	p.clamp()
	return p.page
}

// PageSize returns the configured page size
func (p *Pager[T]) PageSize() int {
	return p.size
}

// TotalItems returns the size of the backing collection
func (p *Pager[T]) TotalItems() int {
	return len(p.items)
}

// TotalPages returns max(1, ceil(n/size)); an empty collection still
// has one (empty) page
func (p *Pager[T]) TotalPages() int {
	n := len(p.items)
	if n == 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// PageItems returns the slice of items for the current page,
// recomputed from the backing collection
func (p *Pager[T]) PageItems() []T {
	p.clamp()
	start := (p.page - 1) * p.size
	if start >= len(p.items) {
		return nil
	}
	end := start + p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// StartIndex returns the 1-based index of the first item on the current
// page, or 0 when the collection is empty
func (p *Pager[T]) StartIndex() int {
	if len(p.items) == 0 {
		return 0
	}
	p.clamp()
	return (p.page-1)*p.size + 1
}

// EndIndex returns the 1-based index of the last item on the current page
func (p *Pager[T]) EndIndex() int {
	p.clamp()
	end := p.page * p.size
	if end > len(p.items) {
		end = len(p.items)
	}
	return end
}

// GoToPage sets the current page; out-of-range targets are ignored
func (p *Pager[T]) GoToPage(page int) {
	p.clamp()
	if page < 1 || page > p.TotalPages() {
		return
	}
	p.page = page
}

// NextPage advances one page; a no-op on the last page
func (p *Pager[T]) NextPage() {
	p.GoToPage(p.Page() + 1)
}

// PreviousPage goes back one page; a no-op on the first page
func (p *Pager[T]) PreviousPage() {
	p.GoToPage(p.Page() - 1)
}
