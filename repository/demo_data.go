package repository

import "time"

// SeedDemoData loads the starter records served before any client has
// created anything: four loans and three payments.
func SeedDemoData(store LoanStore) {
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	store.InsertLoan("Tom's Loan", 5.0, 10000, due)
	store.InsertLoan("Chris Wailaka", 3.5, 500000, due)
	store.InsertLoan("NP Mobile Money", 4.5, 30000, due)
	store.InsertLoan("Esther's Autoparts", 1.5, 40000, due)

	store.InsertPayment(1, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC))
	store.InsertPayment(2, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	store.InsertPayment(3, time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC))
}
