package domain

import (
	"time"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"github.com/lifebook/lifebook/internal/csvutil"
	"github.com/lifebook/lifebook/internal/database"
	"github.com/lifebook/lifebook/internal/listing"
	appValidation "github.com/lifebook/lifebook/internal/validation"
)

// Expense is money spent.
type Expense struct {
	Record
	Date          time.Time
	Payee         string
	Category      string
	PaymentMethod string
	Amount        decimal.Decimal
	Notes         string
}

// Validate checks the expense's business rules.
func (e *Expense) Validate() error {
	err := validation.ValidateStruct(e,
		validation.Field(&e.Date, validation.Required.Error("date is required")),
		validation.Field(&e.Payee,
			validation.Required.Error("payee is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("payee must be between 1 and 255 characters"),
		),
		validation.Field(&e.Category,
			validation.Required.Error("category is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("category must be between 1 and 255 characters"),
		),
		validation.Field(&e.PaymentMethod,
			validation.Length(0, 64).Error("payment_method must be at most 64 characters"),
		),
		validation.Field(&e.Amount, NonNegativeAmount),
		validation.Field(&e.Notes, validation.Length(0, 10000).Error("notes must be at most 10000 characters")),
	)
	return appValidation.WrapValidationError(err)
}

// ExpenseSchema describes the expenses resource for the shared pipeline.
func ExpenseSchema() Schema[*Expense] {
	return Schema[*Expense]{
		Resource:     "expenses",
		Table:        "expenses",
		FieldColumns: []string{"date", "payee", "category", "payment_method", "amount", "notes"},
		DateColumn:   "date",
		FilterSpecs: []listing.FieldSpec{
			{Param: "payee", Column: "payee", Kind: listing.KindContains},
			{Param: "category", Column: "category", Kind: listing.KindContains},
			{Param: "payment_method", Column: "payment_method", Kind: listing.KindContains},
			{Param: "date_from", Column: "date", Kind: listing.KindDateFrom},
			{Param: "date_to", Column: "date", Kind: listing.KindDateTo},
			{Param: "amount_min", Column: "amount", Kind: listing.KindDecimalMin},
			{Param: "amount_max", Column: "amount", Kind: listing.KindDecimalMax},
		},
		ValueColumns: map[string]string{
			"category":       "category",
			"payee":          "payee",
			"payment_method": "payment_method",
		},
		Dimensions: map[string]Dimension[*Expense]{
			"category":       {Key: func(r *Expense) string { return r.Category }},
			"payment_method": {Key: func(r *Expense) string { return r.PaymentMethod }},
			"month":          {Key: func(r *Expense) string { return monthKey(r.Date) }, Chronological: true},
			"year":           {Key: func(r *Expense) string { return yearKey(r.Date) }, Chronological: true},
		},
		Amount: func(r *Expense) decimal.Decimal { return r.Amount },
		CSVFields: []csvutil.Field[*Expense]{
			{Label: "date", Extract: func(r *Expense) string { return formatDate(r.Date) }},
			{Label: "payee", Extract: func(r *Expense) string { return r.Payee }},
			{Label: "category", Extract: func(r *Expense) string { return r.Category }},
			{Label: "payment_method", Extract: func(r *Expense) string { return r.PaymentMethod }},
			{Label: "amount", Extract: func(r *Expense) string { return r.Amount.String() }},
			{Label: "notes", Extract: func(r *Expense) string { return r.Notes }},
		},
		Scan: func(row database.RowScanner) (*Expense, error) {
			var r Expense
			err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.Payee, &r.Category, &r.PaymentMethod,
				&r.Amount, &r.Notes, &r.CreatedAt, &r.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
		FieldArgs: func(r *Expense) []any {
			return []any{r.Date, r.Payee, r.Category, r.PaymentMethod, r.Amount, r.Notes}
		},
	}
}
