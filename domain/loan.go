package domain

import "time"

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

type Loan struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	InterestRate float64   `json:"interest_rate"`
	Principal    int       `json:"principal"`
	DueDate      time.Time `json:"due_date"`
}

type Payment struct {
	ID          int       `json:"id"`
	LoanID      int       `json:"loan_id"`
	PaymentDate time.Time `json:"payment_date"`
}

// CreateLoanParams carries the fields for a new loan. Nil pointers mark
// fields absent from the request, so validation can name every missing one.
type CreateLoanParams struct {
	Name         *string
	InterestRate *float64
	Principal    *int
	DueDate      *time.Time
}

type CreatePaymentParams struct {
	LoanID      *int
	PaymentDate *time.Time
}
