package service

import (
	"fmt"
	"strings"
)

// MissingFieldError reports every required field absent from a create
// request, not just the first one found.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// LoanNotFoundError reports a payment referencing a loan id that does not
// exist in the store.
type LoanNotFoundError struct {
	ID int
}

func (e *LoanNotFoundError) Error() string {
	return fmt.Sprintf("loan with id %d not found", e.ID)
}
