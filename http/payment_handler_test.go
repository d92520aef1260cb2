package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loan-api/repository"
	"loan-api/service"
)

func newTestHandler() (*PaymentHandler, *repository.MemoryLoanStore) {
	store := repository.NewMemoryLoanStore()
	store.InsertLoan("Test Loan 1", 5.0, 10000, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	store.InsertLoan("Test Loan 2", 3.5, 50000, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))

	svc := service.NewLoanService(store, repository.NewMemoryCache())
	return NewPaymentHandler(svc), store
}

func postPayment(handler *PaymentHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(
		http.MethodPost,
		"/loan-payments",
		bytes.NewBufferString(body),
	)
	w := httptest.NewRecorder()
	handler.CreatePayment(w, req)
	return w
}

func TestCreatePaymentHandler_Created(t *testing.T) {

	handler, store := newTestHandler()

	w := postPayment(handler, `{"loan_id": 1, "payment_date": "2025-05-05"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp paymentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != 1 {
		t.Errorf("expected payment id 1, got %d", resp.ID)
	}
	if resp.LoanID != 1 {
		t.Errorf("expected loan_id 1, got %d", resp.LoanID)
	}
	if resp.PaymentDate != "2025-05-05" {
		t.Errorf("expected payment_date 2025-05-05, got %q", resp.PaymentDate)
	}
	if len(store.ListPayments()) != 1 {
		t.Errorf("expected 1 stored payment, got %d", len(store.ListPayments()))
	}
}

func TestCreatePaymentHandler_CoercesStringLoanID(t *testing.T) {

	handler, _ := newTestHandler()

	w := postPayment(handler, `{"loan_id": "2", "payment_date": "2025-05-05"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp paymentResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.LoanID != 2 {
		t.Errorf("expected loan_id 2, got %d", resp.LoanID)
	}
	if resp.PaymentDate != "2025-05-05" {
		t.Errorf("expected payment_date 2025-05-05, got %q", resp.PaymentDate)
	}
}

func TestCreatePaymentHandler_LoanNotFound(t *testing.T) {

	handler, store := newTestHandler()

	w := postPayment(handler, `{"loan_id": 999, "payment_date": "2025-05-05"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not found") {
		t.Errorf("expected error body to mention not found, got %s", w.Body.String())
	}
	if len(store.ListPayments()) != 0 {
		t.Errorf("payments collection changed on failed create")
	}
}

func TestCreatePaymentHandler_MalformedBody(t *testing.T) {

	handler, _ := newTestHandler()

	w := postPayment(handler, `{invalid-json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreatePaymentHandler_MissingFields(t *testing.T) {

	handler, _ := newTestHandler()

	w := postPayment(handler, `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "loan_id") || !strings.Contains(body, "payment_date") {
		t.Errorf("expected error body to name both missing fields, got %s", body)
	}
}

func TestCreatePaymentHandler_NonIntegerLoanID(t *testing.T) {

	handler, _ := newTestHandler()

	for _, body := range []string{
		`{"loan_id": "abc", "payment_date": "2025-05-05"}`,
		`{"loan_id": 1.5, "payment_date": "2025-05-05"}`,
		`{"loan_id": true, "payment_date": "2025-05-05"}`,
	} {
		w := postPayment(handler, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}
}

func TestCreatePaymentHandler_BadDateFormat(t *testing.T) {

	handler, store := newTestHandler()

	for _, body := range []string{
		`{"loan_id": 1, "payment_date": "05-05-2025"}`,
		`{"loan_id": 1, "payment_date": "2025-13-40"}`,
		`{"loan_id": 1, "payment_date": "soon"}`,
	} {
		w := postPayment(handler, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, w.Code)
		}
	}

	if len(store.ListPayments()) != 0 {
		t.Errorf("payments collection changed on failed create")
	}
}

func TestHomeHandler(t *testing.T) {

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Welcome to the Loan Application API" {
		t.Errorf("unexpected welcome text: %q", w.Body.String())
	}
}
