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

// Income is money received: salary, interest, a sold couch.
type Income struct {
	Record
	Date     time.Time
	Source   string
	Category string
	Amount   decimal.Decimal
	Notes    string
}

// Validate checks the income's business rules.
func (i *Income) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Date, validation.Required.Error("date is required")),
		validation.Field(&i.Source,
			validation.Required.Error("source is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("source must be between 1 and 255 characters"),
		),
		validation.Field(&i.Category,
			validation.Required.Error("category is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("category must be between 1 and 255 characters"),
		),
		validation.Field(&i.Amount, NonNegativeAmount),
		validation.Field(&i.Notes, validation.Length(0, 10000).Error("notes must be at most 10000 characters")),
	)
	return appValidation.WrapValidationError(err)
}

// IncomeSchema describes the incomes resource for the shared pipeline.
func IncomeSchema() Schema[*Income] {
	return Schema[*Income]{
		Resource:     "incomes",
		Table:        "incomes",
		FieldColumns: []string{"date", "source", "category", "amount", "notes"},
		DateColumn:   "date",
		FilterSpecs: []listing.FieldSpec{
			{Param: "source", Column: "source", Kind: listing.KindContains},
			{Param: "category", Column: "category", Kind: listing.KindContains},
			{Param: "date_from", Column: "date", Kind: listing.KindDateFrom},
			{Param: "date_to", Column: "date", Kind: listing.KindDateTo},
			{Param: "amount_min", Column: "amount", Kind: listing.KindDecimalMin},
			{Param: "amount_max", Column: "amount", Kind: listing.KindDecimalMax},
		},
		ValueColumns: map[string]string{
			"category": "category",
			"source":   "source",
		},
		Dimensions: map[string]Dimension[*Income]{
			"category": {Key: func(r *Income) string { return r.Category }},
			"source":   {Key: func(r *Income) string { return r.Source }},
			"month":    {Key: func(r *Income) string { return monthKey(r.Date) }, Chronological: true},
			"year":     {Key: func(r *Income) string { return yearKey(r.Date) }, Chronological: true},
		},
		Amount: func(r *Income) decimal.Decimal { return r.Amount },
		CSVFields: []csvutil.Field[*Income]{
			{Label: "date", Extract: func(r *Income) string { return formatDate(r.Date) }},
			{Label: "source", Extract: func(r *Income) string { return r.Source }},
			{Label: "category", Extract: func(r *Income) string { return r.Category }},
			{Label: "amount", Extract: func(r *Income) string { return r.Amount.String() }},
			{Label: "notes", Extract: func(r *Income) string { return r.Notes }},
		},
		Scan: func(row database.RowScanner) (*Income, error) {
			var r Income
			err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.Source, &r.Category, &r.Amount, &r.Notes,
				&r.CreatedAt, &r.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
		FieldArgs: func(r *Income) []any {
			return []any{r.Date, r.Source, r.Category, r.Amount, r.Notes}
		},
	}
}
