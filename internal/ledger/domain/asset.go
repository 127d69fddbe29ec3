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

// Asset is a point-in-time valuation of something owned: an account
// balance, a property estimate, a portfolio snapshot.
type Asset struct {
	Record
	Date   time.Time
	Name   string
	Class  string
	Amount decimal.Decimal
	Notes  string
}

// Validate checks the asset's business rules.
func (a *Asset) Validate() error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Date, validation.Required.Error("date is required")),
		validation.Field(&a.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&a.Class,
			validation.Required.Error("class is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("class must be between 1 and 255 characters"),
		),
		validation.Field(&a.Amount, NonNegativeAmount),
		validation.Field(&a.Notes, validation.Length(0, 10000).Error("notes must be at most 10000 characters")),
	)
	return appValidation.WrapValidationError(err)
}

// AssetSchema describes the assets resource for the shared pipeline.
func AssetSchema() Schema[*Asset] {
	return Schema[*Asset]{
		Resource:     "assets",
		Table:        "assets",
		FieldColumns: []string{"date", "name", "class", "amount", "notes"},
		DateColumn:   "date",
		FilterSpecs: []listing.FieldSpec{
			{Param: "name", Column: "name", Kind: listing.KindContains},
			{Param: "class", Column: "class", Kind: listing.KindContains},
			{Param: "date_from", Column: "date", Kind: listing.KindDateFrom},
			{Param: "date_to", Column: "date", Kind: listing.KindDateTo},
			{Param: "amount_min", Column: "amount", Kind: listing.KindDecimalMin},
			{Param: "amount_max", Column: "amount", Kind: listing.KindDecimalMax},
		},
		ValueColumns: map[string]string{
			"class": "class",
		},
		Dimensions: map[string]Dimension[*Asset]{
			"class": {Key: func(r *Asset) string { return r.Class }},
			"month": {Key: func(r *Asset) string { return monthKey(r.Date) }, Chronological: true},
			"year":  {Key: func(r *Asset) string { return yearKey(r.Date) }, Chronological: true},
		},
		Amount: func(r *Asset) decimal.Decimal { return r.Amount },
		CSVFields: []csvutil.Field[*Asset]{
			{Label: "date", Extract: func(r *Asset) string { return formatDate(r.Date) }},
			{Label: "name", Extract: func(r *Asset) string { return r.Name }},
			{Label: "class", Extract: func(r *Asset) string { return r.Class }},
			{Label: "amount", Extract: func(r *Asset) string { return r.Amount.String() }},
			{Label: "notes", Extract: func(r *Asset) string { return r.Notes }},
		},
		Scan: func(row database.RowScanner) (*Asset, error) {
			var r Asset
			err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.Name, &r.Class, &r.Amount, &r.Notes,
				&r.CreatedAt, &r.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
		FieldArgs: func(r *Asset) []any {
			return []any{r.Date, r.Name, r.Class, r.Amount, r.Notes}
		},
	}
}
