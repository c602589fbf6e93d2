package store

// Defaults for list pagination. The size cap keeps a single request from
// dragging the whole table over the wire.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ListParams are the pagination inputs accepted by the list operations.
type ListParams struct {
	Page int
	Size int
}

// Normalize clamps the params into their valid ranges.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the pagination envelope returned by list operations.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// NewPage wraps the items with pagination metadata.
func NewPage[T any](items []T, total int, params ListParams) *Page[T] {
	pages := 0
	if params.Size > 0 {
		pages = (total + params.Size - 1) / params.Size
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}
