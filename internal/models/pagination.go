package models

// ListBooksQuery holds the optional query parameters of GET /books.
// limit is an alias of pageSize, offset overrides the page-derived offset.
type ListBooksQuery struct {
	Page     *int `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize *int `json:"pageSize,omitempty" validate:"omitempty,min=1,max=100"`
	Limit    *int `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Offset   *int `json:"offset,omitempty" validate:"omitempty,min=0"`
}

// Validate checks parameter ranges.
func (q ListBooksQuery) Validate() error {
	return validateStruct(q)
}

// Pagination describes the page returned by GET /books
// swagger:model Pagination
type Pagination struct {
	// example: 1
	Page int `json:"page"`
	// example: 10
	PageSize int `json:"pageSize"`
	// example: 200
	TotalItems int64 `json:"totalItems"`
	// example: 20
	TotalPages int `json:"totalPages"`
}

// BookList is the paginated list response
// swagger:model BookList
type BookList struct {
	Data       []Book     `json:"data"`
	Pagination Pagination `json:"pagination"`
}
