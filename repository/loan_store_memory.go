package repository

import (
	"sync"
	"time"

	"loan-api/domain"
)

// MemoryLoanStore is an in-memory implementation of LoanStore. The mutex
// covers both collections so the max(id)+1 assignment cannot race with a
// concurrent insert.
type MemoryLoanStore struct {
	mu       sync.Mutex
	loans    []domain.Loan
	payments []domain.Payment
}

// NewMemoryLoanStore creates an empty in-memory loan store.
func NewMemoryLoanStore() *MemoryLoanStore {
	return &MemoryLoanStore{
		loans:    []domain.Loan{},
		payments: []domain.Payment{},
	}
}

// ListLoans returns all loans in insertion order.
func (s *MemoryLoanStore) ListLoans() []domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Loan, len(s.loans))
	copy(out, s.loans)
	return out
}

// FindLoan returns the loan with the given id. Absence is a valid outcome,
// not an error.
func (s *MemoryLoanStore) FindLoan(id int) (domain.Loan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, loan := range s.loans {
		if loan.ID == id {
			return loan, true
		}
	}
	return domain.Loan{}, false
}

// ListPayments returns all payments in insertion order.
func (s *MemoryLoanStore) ListPayments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// PaymentsForLoan returns the payments referencing loanID, in insertion
// order. Recomputed on every call; never cached.
func (s *MemoryLoanStore) PaymentsForLoan(loanID int) []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Payment{}
	for _, p := range s.payments {
		if p.LoanID == loanID {
			out = append(out, p)
		}
	}
	return out
}

// InsertLoan assigns the next loan id, appends and returns the stored record.
func (s *MemoryLoanStore) InsertLoan(
	name string,
	interestRate float64,
	principal int,
	dueDate time.Time,
) domain.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	loan := domain.Loan{
		ID:           nextLoanID(s.loans),
		Name:         name,
		InterestRate: interestRate,
		Principal:    principal,
		DueDate:      dueDate,
	}
	s.loans = append(s.loans, loan)
	return loan
}

// InsertPayment assigns the next payment id, appends and returns the stored
// record. Referential checks belong to the service layer, not the store.
func (s *MemoryLoanStore) InsertPayment(
	loanID int,
	paymentDate time.Time,
) domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment := domain.Payment{
		ID:          nextPaymentID(s.payments),
		LoanID:      loanID,
		PaymentDate: paymentDate,
	}
	s.payments = append(s.payments, payment)
	return payment
}

// next id = max existing id + 1, or 1 on an empty collection.
func nextLoanID(loans []domain.Loan) int {
	max := 0
	for _, l := range loans {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

func nextPaymentID(payments []domain.Payment) int {
	max := 0
	for _, p := range payments {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
