package repository

import (
	"time"

	"loan-api/domain"
)

type LoanStore interface {
	ListLoans() []domain.Loan
	FindLoan(id int) (domain.Loan, bool)
	ListPayments() []domain.Payment
	PaymentsForLoan(loanID int) []domain.Payment
	InsertLoan(name string, interestRate float64, principal int, dueDate time.Time) domain.Loan
	InsertPayment(loanID int, paymentDate time.Time) domain.Payment
}
