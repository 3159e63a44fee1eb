package queries

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxListLimit = 50
)

// Page is one offset-paginated slice of a listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// NormalizePage applies defaults to zero values and clamps limit to
// 1..MaxListLimit.
func NormalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return page, limit
}

func offset(page, limit int) int {
	return (page - 1) * limit
}
