package model

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is 1-based pagination shared by admin listings.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages returns ceil(total / limit).
func (p Page) TotalPages(total int64) int64 {
	if p.Limit <= 0 {
		return 0
	}
	return (total + int64(p.Limit) - 1) / int64(p.Limit)
}

// Contains reports whether v is in set.
func Contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
