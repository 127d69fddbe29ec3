package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifebook/lifebook/internal/ledger/domain"
	"github.com/lifebook/lifebook/internal/ledger/usecase"
	"github.com/lifebook/lifebook/internal/listing"
)

// ListResponse represents one page of ledger entries.
type ListResponse[R any] struct {
	Items      []R `json:"items"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
}

// ToListResponse converts a use case listing output to a response DTO.
func ToListResponse[T domain.Entry, R any](output usecase.ListOutput[T], toResponse func(T) R) ListResponse[R] {
	items := make([]R, 0, len(output.Items))
	for _, record := range output.Items {
		items = append(items, toResponse(record))
	}

	return ListResponse[R]{
		Items:      items,
		TotalCount: output.TotalCount,
		TotalPages: output.TotalPages,
		Page:       output.Page,
		Limit:      output.Limit,
	}
}

// StatsResponse represents an aggregated, grouped view of a resource.
type StatsResponse struct {
	Buckets []listing.Bucket `json:"buckets"`
}

// ValuesResponse represents the distinct values of a filterable field.
type ValuesResponse struct {
	Values []string `json:"values"`
}

// formatDate renders a stored timestamp as its calendar date in UTC.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// IncomeResponse represents the API response for an income.
type IncomeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Source    string          `json:"source"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToIncomeResponse converts a domain Income to a response DTO.
func ToIncomeResponse(record *domain.Income) IncomeResponse {
	return IncomeResponse{
		ID:        record.ID,
		Date:      formatDate(record.Date),
		Source:    record.Source,
		Category:  record.Category,
		Amount:    record.Amount,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// ExpenseResponse represents the API response for an expense.
type ExpenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"`
	Payee         string          `json:"payee"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts a domain Expense to a response DTO.
func ToExpenseResponse(record *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            record.ID,
		Date:          formatDate(record.Date),
		Payee:         record.Payee,
		Category:      record.Category,
		PaymentMethod: record.PaymentMethod,
		Amount:        record.Amount,
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}

// AssetResponse represents the API response for an asset valuation.
type AssetResponse struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Name      string          `json:"name"`
	Class     string          `json:"class"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToAssetResponse converts a domain Asset to a response DTO.
func ToAssetResponse(record *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:        record.ID,
		Date:      formatDate(record.Date),
		Name:      record.Name,
		Class:     record.Class,
		Amount:    record.Amount,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// BookNoteResponse represents the API response for a book note.
type BookNoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBookNoteResponse converts a domain BookNote to a response DTO.
func ToBookNoteResponse(record *domain.BookNote) BookNoteResponse {
	return BookNoteResponse{
		ID:        record.ID,
		Date:      formatDate(record.Date),
		Title:     record.Title,
		Author:    record.Author,
		Rating:    record.Rating,
		Review:    record.Review,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

// DiaryEntryResponse represents the API response for a diary entry.
type DiaryEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Mood      string    `json:"mood"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDiaryEntryResponse converts a domain DiaryEntry to a response DTO.
func ToDiaryEntryResponse(record *domain.DiaryEntry) DiaryEntryResponse {
	return DiaryEntryResponse{
		ID:        record.ID,
		Date:      formatDate(record.Date),
		Title:     record.Title,
		Mood:      record.Mood,
		Body:      record.Body,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
