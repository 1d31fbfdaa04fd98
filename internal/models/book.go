package models

import "time"

// Book represents a row of the books table and its JSON form.
// swagger:model Book
type Book struct {
	// Identifier assigned by the database
	// example: 1
	ID int64 `json:"id" db:"id"`

	// Unique title of the book
	// example: Echoes of Time
	Name string `json:"name" db:"name"`

	// Author name
	// example: Virginia Woolf
	Author string `json:"author" db:"author"`

	// Year of publication, null when unknown
	// example: 1927
	PublishedYear *int `json:"publishedYear" db:"published_year"`

	// Free-form description, null when absent
	// example: A story that will stay with you long after you finish reading.
	Description *string `json:"description" db:"description"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// CreateBookRequest represents the JSON body for creating a book
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// Name
	// required: true
	// example: Echoes of Time
	Name string `json:"name" validate:"required,max=255"`

	// Author
	// required: true
	// example: Virginia Woolf
	Author string `json:"author" validate:"required,max=255"`

	// Published year between 0 and 2100
	// example: 1927
	PublishedYear *int `json:"publishedYear,omitempty" validate:"omitempty,min=0,max=2100"`

	// Description
	// example: A masterful work of literary fiction.
	Description *string `json:"description,omitempty"`
}

// Validate checks field presence, lengths and ranges.
func (r CreateBookRequest) Validate() error {
	return validateStruct(r)
}

// UpdateBookRequest represents the JSON body for a partial update.
// Nil fields are left untouched.
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// example: Echoes of Time, Revised
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`

	// example: Virginia Woolf
	Author *string `json:"author,omitempty" validate:"omitempty,min=1,max=255"`

	// example: 1928
	PublishedYear *int `json:"publishedYear,omitempty" validate:"omitempty,min=0,max=2100"`

	// example: Second edition.
	Description *string `json:"description,omitempty"`
}

// Validate checks the supplied fields only.
func (r UpdateBookRequest) Validate() error {
	return validateStruct(r)
}

// DeleteBookResponse is returned after a successful delete
// swagger:model DeleteBookResponse
type DeleteBookResponse struct {
	// example: true
	Success bool `json:"success"`
}
