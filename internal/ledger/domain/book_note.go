package domain

import (
	"strconv"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/lifebook/lifebook/internal/csvutil"
	"github.com/lifebook/lifebook/internal/database"
	"github.com/lifebook/lifebook/internal/listing"
	appValidation "github.com/lifebook/lifebook/internal/validation"
)

// BookNote records a finished book: when it was read, a rating and a free
// form review. The date is the finish date.
type BookNote struct {
	Record
	Date   time.Time
	Title  string
	Author string
	Rating int
	Review string
}

// Validate checks the book note's business rules.
func (b *BookNote) Validate() error {
	err := validation.ValidateStruct(b,
		validation.Field(&b.Date, validation.Required.Error("date is required")),
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&b.Author,
			validation.Required.Error("author is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("author must be between 1 and 255 characters"),
		),
		validation.Field(&b.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(1).Error("rating must be between 1 and 5"),
			validation.Max(5).Error("rating must be between 1 and 5"),
		),
		validation.Field(&b.Review, validation.Length(0, 50000).Error("review must be at most 50000 characters")),
	)
	return appValidation.WrapValidationError(err)
}

// BookNoteSchema describes the book-notes resource for the shared pipeline.
// Book notes have no monetary amount; the stats endpoint is not offered.
func BookNoteSchema() Schema[*BookNote] {
	return Schema[*BookNote]{
		Resource:     "book-notes",
		Table:        "book_notes",
		FieldColumns: []string{"date", "title", "author", "rating", "review"},
		DateColumn:   "date",
		FilterSpecs: []listing.FieldSpec{
			{Param: "title", Column: "title", Kind: listing.KindContains},
			{Param: "author", Column: "author", Kind: listing.KindContains},
			{Param: "date_from", Column: "date", Kind: listing.KindDateFrom},
			{Param: "date_to", Column: "date", Kind: listing.KindDateTo},
			{Param: "rating_min", Column: "rating", Kind: listing.KindIntMin},
			{Param: "rating_max", Column: "rating", Kind: listing.KindIntMax},
		},
		ValueColumns: map[string]string{
			"author": "author",
		},
		CSVFields: []csvutil.Field[*BookNote]{
			{Label: "date", Extract: func(r *BookNote) string { return formatDate(r.Date) }},
			{Label: "title", Extract: func(r *BookNote) string { return r.Title }},
			{Label: "author", Extract: func(r *BookNote) string { return r.Author }},
			{Label: "rating", Extract: func(r *BookNote) string { return strconv.Itoa(r.Rating) }},
			{Label: "review", Extract: func(r *BookNote) string { return r.Review }},
		},
		Scan: func(row database.RowScanner) (*BookNote, error) {
			var r BookNote
			err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.Title, &r.Author, &r.Rating, &r.Review,
				&r.CreatedAt, &r.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
		FieldArgs: func(r *BookNote) []any {
			return []any{r.Date, r.Title, r.Author, r.Rating, r.Review}
		},
	}
}
