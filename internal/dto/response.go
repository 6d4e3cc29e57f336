package dto

// APIResponse is the envelope around a single resource or a plain list
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PaginatedResponse is the envelope around one page of a listing.
// TotalPages is informational and is not checked against Total.
type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewAPIResponse wraps data in an APIResponse
func NewAPIResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{Data: data}
}

// NewPaginatedResponse wraps one page of items and derives TotalPages
func NewPaginatedResponse[T any](items []T, page, perPage int, total int64) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return PaginatedResponse[T]{
		Data:       items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}
