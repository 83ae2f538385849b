package shared

// Paging limits for list endpoints
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Page is an offset window over a result set
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps skip and limit into the supported range
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page Page) Paginated[T] {
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		Items: items,
		Total: total,
		Skip:  page.Skip,
		Limit: page.Limit,
	}
}
