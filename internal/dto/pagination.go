package dto

// Pagination is the list envelope metadata returned by every paginated list
// endpoint.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// ListParams carries the normalized page/limit query parameters.
type ListParams struct {
	Page  int
	Limit int
}

// Offset converts page/limit into the SQL offset.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NormalizeListParams clamps page and limit to sane values.
func NormalizeListParams(page, limit, defaultLimit int) ListParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return ListParams{Page: page, Limit: limit}
}

// NewPagination computes the envelope from the request params and total count.
func NewPagination(params ListParams, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(params.Limit) - 1) / int64(params.Limit))
	return Pagination{
		CurrentPage:  params.Page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: params.Limit,
		HasNextPage:  params.Page < totalPages,
		HasPrevPage:  params.Page > 1,
	}
}
