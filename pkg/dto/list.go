package dto

// Sort options accepted by the catalog listing. Price sorts order by the raw
// stored cost, not the computed display price.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
)

// ListQuery describes catalog filter, sort and pagination parameters.
// MinPrice and MaxPrice are compared against the raw stored cost.
type ListQuery struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	Page     int
	Limit    int
}

// Pagination summarizes a listing page. Page is 1-indexed; TotalPages is
// ceil(Total/Limit).
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
