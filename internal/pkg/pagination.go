package pkg

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit to sane values before a query runs.
func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return (p.Page - 1) * p.Limit
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: defaultPageSize}
	}
	p.Normalize()
	return p
}
