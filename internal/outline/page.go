package outline

const (
	// DefaultPageSize is used when a caller asks for a non-positive page size.
	DefaultPageSize = 100
	// MaxPageSize caps the page size a caller can request.
	MaxPageSize = 1000
)

// Page is one page of a list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the 1-based page of items. A page past the end is empty.
// Out-of-range sizes fall back to DefaultPageSize or are capped at MaxPageSize.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)
	page = max(page, 1)

	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= total {
		return p
	}
	end := min(start+size, total)
	p.Items = items[start:end]
	return p
}
