package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"loan-api/domain"
	"loan-api/service"
)

// dateScalar carries calendar dates as YYYY-MM-DD strings.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "A calendar date in YYYY-MM-DD format.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.Format(domain.DateLayout)
		case *time.Time:
			return v.Format(domain.DateLayout)
		case string:
			return v
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		return parseDate(s)
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		lit, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		return parseDate(lit.Value)
	},
})

func parseDate(s string) interface{} {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil
	}
	return t
}

// NewSchema builds the schema served at /graphql: loan and payment types,
// the read queries and the two create mutations, all resolved against svc.
func NewSchema(svc *service.LoanService) (graphql.Schema, error) {
	paymentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Payment",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"loanId":      &graphql.Field{Type: graphql.Int},
			"paymentDate": &graphql.Field{Type: dateScalar},
		},
	})

	loanType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Loan",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.Int},
			"name":         &graphql.Field{Type: graphql.String},
			"interestRate": &graphql.Field{Type: graphql.Float},
			"principal":    &graphql.Field{Type: graphql.Int},
			"dueDate":      &graphql.Field{Type: dateScalar},
			"payments": &graphql.Field{
				Type: graphql.NewList(paymentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					loan, ok := p.Source.(domain.Loan)
					if !ok {
						return nil, nil
					}
					return svc.PaymentsForLoan(loan.ID), nil
				},
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"loans": &graphql.Field{
				Type: graphql.NewList(loanType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListLoans(), nil
				},
			},
			"loan": &graphql.Field{
				Type: loanType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(int)
					if !ok {
						return nil, nil
					}
					loan, found := svc.GetLoan(id)
					if !found {
						// Absence is a valid query outcome, not an error.
						return nil, nil
					}
					return loan, nil
				},
			},
			"loanPayments": &graphql.Field{
				Type: graphql.NewList(paymentType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListPayments(), nil
				},
			},
		},
	})

	createLoanInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateLoanInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"interestRate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"principal":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"dueDate":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(dateScalar)},
		},
	})

	createLoanPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateLoanPayload",
		Fields: graphql.Fields{
			"loan": &graphql.Field{Type: loanType},
		},
	})

	createLoanPaymentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateLoanPaymentInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"loanId":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"paymentDate": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(dateScalar)},
		},
	})

	createLoanPaymentPayload := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateLoanPaymentPayload",
		Fields: graphql.Fields{
			"payment": &graphql.Field{Type: paymentType},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createLoan": &graphql.Field{
				Type: createLoanPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createLoanInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})

					params := domain.CreateLoanParams{}
					if name, ok := input["name"].(string); ok {
						params.Name = &name
					}
					if rate, ok := input["interestRate"].(float64); ok {
						params.InterestRate = &rate
					}
					if principal, ok := input["principal"].(int); ok {
						params.Principal = &principal
					}
					if due, ok := input["dueDate"].(time.Time); ok {
						params.DueDate = &due
					}

					loan, err := svc.CreateLoan(params)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"loan": loan}, nil
				},
			},
			"createLoanPayment": &graphql.Field{
				Type: createLoanPaymentPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createLoanPaymentInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input, _ := p.Args["input"].(map[string]interface{})

					params := domain.CreatePaymentParams{}
					if loanID, ok := input["loanId"].(int); ok {
						params.LoanID = &loanID
					}
					if date, ok := input["paymentDate"].(time.Time); ok {
						params.PaymentDate = &date
					}

					payment, err := svc.CreatePayment(params)
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"payment": payment}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
