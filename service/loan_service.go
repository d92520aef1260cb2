package service

import (
	"encoding/json"
	"fmt"
	"log"

	"loan-api/domain"
	"loan-api/repository"
)

type LoanService struct {
	store repository.LoanStore
	cache repository.CacheRepository
}

// NewLoanService creates a LoanService backed by the given store and cache.
func NewLoanService(store repository.LoanStore,
	cache repository.CacheRepository,
) *LoanService {
	return &LoanService{store: store, cache: cache}
}

// ListLoans returns all loans in insertion order.
func (s *LoanService) ListLoans() []domain.Loan {
	return s.store.ListLoans()
}

// GetLoan returns the loan with the given id, reading through the cache.
// Loans are never updated or deleted, so cached entries cannot go stale.
func (s *LoanService) GetLoan(id int) (domain.Loan, bool) {
	key := loanCacheKey(id)

	if raw, ok := s.cache.Get(key); ok {
		var loan domain.Loan
		if err := json.Unmarshal([]byte(raw), &loan); err == nil {
			return loan, true
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	loan, ok := s.store.FindLoan(id)
	if !ok {
		return domain.Loan{}, false
	}
	s.cacheLoan(loan)
	return loan, true
}

// ListPayments returns all payments in insertion order.
func (s *LoanService) ListPayments() []domain.Payment {
	return s.store.ListPayments()
}

// PaymentsForLoan returns the payments referencing the given loan, in
// insertion order. Always recomputed from store state.
func (s *LoanService) PaymentsForLoan(loanID int) []domain.Payment {
	return s.store.PaymentsForLoan(loanID)
}

// CreateLoan validates the params and inserts a new loan. Every missing
// field is reported at once, and nothing is written on failure.
func (s *LoanService) CreateLoan(params domain.CreateLoanParams) (domain.Loan, error) {
	var missing []string
	if params.Name == nil || *params.Name == "" {
		missing = append(missing, "name")
	}
	if params.InterestRate == nil {
		missing = append(missing, "interestRate")
	}
	if params.Principal == nil {
		missing = append(missing, "principal")
	}
	if params.DueDate == nil {
		missing = append(missing, "dueDate")
	}
	if len(missing) > 0 {
		return domain.Loan{}, &MissingFieldError{Fields: missing}
	}

	loan := s.store.InsertLoan(*params.Name, *params.InterestRate, *params.Principal, *params.DueDate)
	s.cacheLoan(loan)
	return loan, nil
}

// CreatePayment validates the params, checks that the referenced loan
// exists, and inserts a new payment. The referential check runs before id
// assignment so a failure leaves the store untouched.
func (s *LoanService) CreatePayment(params domain.CreatePaymentParams) (domain.Payment, error) {
	var missing []string
	if params.LoanID == nil {
		missing = append(missing, "loanId")
	}
	if params.PaymentDate == nil {
		missing = append(missing, "paymentDate")
	}
	if len(missing) > 0 {
		return domain.Payment{}, &MissingFieldError{Fields: missing}
	}

	if _, ok := s.store.FindLoan(*params.LoanID); !ok {
		return domain.Payment{}, &LoanNotFoundError{ID: *params.LoanID}
	}

	return s.store.InsertPayment(*params.LoanID, *params.PaymentDate), nil
}

// cacheLoan stores the loan in the cache. Failures are not critical.
func (s *LoanService) cacheLoan(loan domain.Loan) {
	raw, err := json.Marshal(loan)
	if err != nil {
		log.Printf("Warning: failed to encode loan %d for cache: %v", loan.ID, err)
		return
	}
	if err := s.cache.Set(loanCacheKey(loan.ID), string(raw)); err != nil {
		log.Printf("Warning: failed to cache loan %d: %v", loan.ID, err)
	}
}

func loanCacheKey(id int) string {
	return fmt.Sprintf("loan:%d", id)
}
