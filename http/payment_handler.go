package http

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"loan-api/domain"
	"loan-api/service"
)

type PaymentHandler struct {
	service    *service.LoanService
	validate   *validator.Validate
	translator ut.Translator
}

func NewPaymentHandler(svc *service.LoanService) *PaymentHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	eng := en.New()
	uni := ut.New(eng, eng)
	translator, found := uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Fatal(err)
	}

	return &PaymentHandler{
		service:    svc,
		validate:   validate,
		translator: translator,
	}
}

// loan_id is left untyped so a JSON number and a numeric string are both
// accepted; anything else is rejected before the service is called.
type createPaymentRequest struct {
	LoanID      interface{} `json:"loan_id"`
	PaymentDate *string     `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

type paymentResponse struct {
	ID          int    `json:"id"`
	LoanID      int    `json:"loan_id"`
	PaymentDate string `json:"payment_date"`
}

// CreatePayment handles POST /loan-payments.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var problems []string

	loanID, err := coerceLoanID(req.LoanID)
	if err != nil {
		problems = append(problems, err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respondWithError(w, http.StatusInternalServerError, err.Error())
			return
		}
		for _, msg := range verrs.Translate(h.translator) {
			problems = append(problems, msg)
		}
	}

	if len(problems) > 0 {
		respondWithError(w, http.StatusBadRequest, strings.Join(problems, "; "))
		return
	}

	paymentDate, err := time.Parse(domain.DateLayout, *req.PaymentDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "payment_date must be a YYYY-MM-DD date")
		return
	}

	payment, err := h.service.CreatePayment(domain.CreatePaymentParams{
		LoanID:      &loanID,
		PaymentDate: &paymentDate,
	})
	if err != nil {
		var notFound *service.LoanNotFoundError
		var missing *service.MissingFieldError
		switch {
		case errors.As(err, &notFound):
			respondWithError(w, http.StatusNotFound, notFound.Error())
		case errors.As(err, &missing):
			respondWithError(w, http.StatusBadRequest, missing.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, paymentResponse{
		ID:          payment.ID,
		LoanID:      payment.LoanID,
		PaymentDate: payment.PaymentDate.Format(domain.DateLayout),
	})
}

func coerceLoanID(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, errors.New("loan_id is a required field")
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.New("loan_id must be an integer")
		}
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.New("loan_id must be an integer")
		}
		return id, nil
	default:
		return 0, errors.New("loan_id must be an integer")
	}
}
