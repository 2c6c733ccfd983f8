package repositories

import "gorm.io/gorm"

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page is an offset/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// NewPage clamps raw skip/limit values into a usable window.
func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit > MaxLimit:
		limit = MaxLimit
	case limit <= 0:
		limit = DefaultLimit
	}
	return Page{Skip: skip, Limit: limit}
}

func (p Page) Scope(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Skip).Limit(p.Limit)
}
