package db

// Pagination gives information on the items of a paginated query
type Pagination struct {
	TotalItems uint64 `json:"totalItems"`
	FirstItem  uint64 `json:"firstItem"`
	LastItem   uint64 `json:"lastItem"`
}
