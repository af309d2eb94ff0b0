// model/author.go
package model

// Author.BirthDate holds the canonical partial date produced by
// datex.NormalizeBirthDate: DD-MM-YYYY, MM-YYYY or YYYY.
type Author struct {
	ID        int64   `json:"AuthorID"`
	LastName  string  `json:"LastName"`
	FirstName string  `json:"FirstName"`
	BirthDate *string `json:"BirthDate"`
}

// CreateAuthorReq is also embedded in CreateBookReq as NewAuthor.
type CreateAuthorReq struct {
	LastName  string  `json:"LastName" validate:"required,max=200"`
	FirstName string  `json:"FirstName" validate:"required,max=200"`
	BirthDate *string `json:"BirthDate,omitempty"`
}

type UpdateAuthorReq struct {
	LastName  *string `json:"LastName,omitempty" validate:"omitnil,min=1,max=200"`
	FirstName *string `json:"FirstName,omitempty" validate:"omitnil,min=1,max=200"`
	BirthDate *string `json:"BirthDate,omitempty"`
}
