package schema

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is the pagination window of a list query. Page numbers start from 1.
type Page struct {
	Page  int64
	Limit int64
}

// Normalize fills in defaults and clamps the limit
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Skip is the number of records before the page
func (p Page) Skip() int64 {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}
