package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the query bounds: 5 to 50 results per page and a page
// number of at least 1. An empty title is allowed and sent as is.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}
	return nil
}

// WithDefaults fills the page number when unset.
func (q Query) WithDefaults() Query {
	if q.Page == 0 {
		q.Page = 1
	}
	return q
}
