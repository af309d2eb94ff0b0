// model/book.go
package model

type Book struct {
	ID              int64   `json:"BookID"`
	Title           string  `json:"Title"`
	AuthorID        *int64  `json:"AuthorID"`
	Isbn            string  `json:"Isbn"`
	PublicationDate *Date   `json:"PublicationDate"`
	Genre           string  `json:"Genre"`
	Available       bool    `json:"Available"`
	CoverURL        *string `json:"CoverUrl"`
}

// CreateBookReq either references an existing author through AuthorID or
// carries a NewAuthor to be created with the book. Supplying both is invalid.
type CreateBookReq struct {
	Title           string           `json:"Title" validate:"required,max=500"`
	AuthorID        *int64           `json:"AuthorID,omitempty" validate:"omitnil,gt=0"`
	Isbn            string           `json:"Isbn" validate:"required,max=32"`
	PublicationDate *Date            `json:"PublicationDate,omitempty"`
	Genre           string           `json:"Genre" validate:"max=100"`
	Available       *bool            `json:"Available,omitempty"`
	CoverURL        *string          `json:"CoverUrl,omitempty" validate:"omitnil,len=0|url"`
	NewAuthor       *CreateAuthorReq `json:"NewAuthor,omitempty"`
}

type UpdateBookReq struct {
	Title           *string `json:"Title,omitempty" validate:"omitnil,min=1,max=500"`
	AuthorID        *int64  `json:"AuthorID,omitempty" validate:"omitnil,gt=0"`
	Isbn            *string `json:"Isbn,omitempty" validate:"omitnil,min=1,max=32"`
	PublicationDate *Date   `json:"PublicationDate,omitempty"`
	Genre           *string `json:"Genre,omitempty" validate:"omitnil,max=100"`
	Available       *bool   `json:"Available,omitempty"`
	CoverURL        *string `json:"CoverUrl,omitempty" validate:"omitnil,len=0|url"`
}
