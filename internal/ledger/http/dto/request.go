// Package dto provides data transfer objects for the ledger HTTP layer.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"github.com/lifebook/lifebook/internal/ledger/domain"
	appValidation "github.com/lifebook/lifebook/internal/validation"
)

// Requests carry the date as a YYYY-MM-DD string; interpretation is always
// UTC. Shape checks live here, business rules in the domain Validate methods.

// parseDate converts an already shape-validated date string.
func parseDate(value string) time.Time {
	date, _ := time.Parse(time.DateOnly, value)
	return date.UTC()
}

// IncomeRequest represents the request body for creating or replacing an income.
type IncomeRequest struct {
	Date     string          `json:"date"`
	Source   string          `json:"source"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

// Validate checks the request shape.
func (r IncomeRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required"), appValidation.DateOnly),
	)
	return appValidation.WrapValidationError(err)
}

// ToIncome converts the request into a domain record without identity.
func ToIncome(r IncomeRequest) *domain.Income {
	return &domain.Income{
		Date:     parseDate(r.Date),
		Source:   r.Source,
		Category: r.Category,
		Amount:   r.Amount,
		Notes:    r.Notes,
	}
}

// ExpenseRequest represents the request body for creating or replacing an expense.
type ExpenseRequest struct {
	Date          string          `json:"date"`
	Payee         string          `json:"payee"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
}

// Validate checks the request shape.
func (r ExpenseRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required"), appValidation.DateOnly),
	)
	return appValidation.WrapValidationError(err)
}

// ToExpense converts the request into a domain record without identity.
func ToExpense(r ExpenseRequest) *domain.Expense {
	return &domain.Expense{
		Date:          parseDate(r.Date),
		Payee:         r.Payee,
		Category:      r.Category,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		Notes:         r.Notes,
	}
}

// AssetRequest represents the request body for creating or replacing an asset
// valuation.
type AssetRequest struct {
	Date   string          `json:"date"`
	Name   string          `json:"name"`
	Class  string          `json:"class"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

// Validate checks the request shape.
func (r AssetRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required"), appValidation.DateOnly),
	)
	return appValidation.WrapValidationError(err)
}

// ToAsset converts the request into a domain record without identity.
func ToAsset(r AssetRequest) *domain.Asset {
	return &domain.Asset{
		Date:   parseDate(r.Date),
		Name:   r.Name,
		Class:  r.Class,
		Amount: r.Amount,
		Notes:  r.Notes,
	}
}

// BookNoteRequest represents the request body for creating or replacing a
// book note.
type BookNoteRequest struct {
	Date   string `json:"date"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Validate checks the request shape.
func (r BookNoteRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required"), appValidation.DateOnly),
	)
	return appValidation.WrapValidationError(err)
}

// ToBookNote converts the request into a domain record without identity.
func ToBookNote(r BookNoteRequest) *domain.BookNote {
	return &domain.BookNote{
		Date:   parseDate(r.Date),
		Title:  r.Title,
		Author: r.Author,
		Rating: r.Rating,
		Review: r.Review,
	}
}

// DiaryEntryRequest represents the request body for creating or replacing a
// diary entry.
type DiaryEntryRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Mood  string `json:"mood"`
	Body  string `json:"body"`
}

// Validate checks the request shape.
func (r DiaryEntryRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required.Error("date is required"), appValidation.DateOnly),
	)
	return appValidation.WrapValidationError(err)
}

// ToDiaryEntry converts the request into a domain record without identity.
func ToDiaryEntry(r DiaryEntryRequest) *domain.DiaryEntry {
	return &domain.DiaryEntry{
		Date:  parseDate(r.Date),
		Title: r.Title,
		Mood:  r.Mood,
		Body:  r.Body,
	}
}
