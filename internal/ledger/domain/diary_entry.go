package domain

import (
	"time"

	validation "github.com/jellydator/validation"

	"github.com/lifebook/lifebook/internal/csvutil"
	"github.com/lifebook/lifebook/internal/database"
	"github.com/lifebook/lifebook/internal/listing"
	appValidation "github.com/lifebook/lifebook/internal/validation"
)

// DiaryEntry is a dated journal entry with an optional mood tag.
type DiaryEntry struct {
	Record
	Date  time.Time
	Title string
	Mood  string
	Body  string
}

// Validate checks the diary entry's business rules.
func (d *DiaryEntry) Validate() error {
	err := validation.ValidateStruct(d,
		validation.Field(&d.Date, validation.Required.Error("date is required")),
		validation.Field(&d.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&d.Mood, validation.Length(0, 64).Error("mood must be at most 64 characters")),
		validation.Field(&d.Body, validation.Length(0, 100000).Error("body must be at most 100000 characters")),
	)
	return appValidation.WrapValidationError(err)
}

// DiaryEntrySchema describes the diary-entries resource for the shared
// pipeline. No amount, no stats.
func DiaryEntrySchema() Schema[*DiaryEntry] {
	return Schema[*DiaryEntry]{
		Resource:     "diary-entries",
		Table:        "diary_entries",
		FieldColumns: []string{"date", "title", "mood", "body"},
		DateColumn:   "date",
		FilterSpecs: []listing.FieldSpec{
			{Param: "title", Column: "title", Kind: listing.KindContains},
			{Param: "mood", Column: "mood", Kind: listing.KindContains},
			{Param: "date_from", Column: "date", Kind: listing.KindDateFrom},
			{Param: "date_to", Column: "date", Kind: listing.KindDateTo},
		},
		ValueColumns: map[string]string{
			"mood": "mood",
		},
		CSVFields: []csvutil.Field[*DiaryEntry]{
			{Label: "date", Extract: func(r *DiaryEntry) string { return formatDate(r.Date) }},
			{Label: "title", Extract: func(r *DiaryEntry) string { return r.Title }},
			{Label: "mood", Extract: func(r *DiaryEntry) string { return r.Mood }},
			{Label: "body", Extract: func(r *DiaryEntry) string { return r.Body }},
		},
		Scan: func(row database.RowScanner) (*DiaryEntry, error) {
			var r DiaryEntry
			err := row.Scan(&r.ID, &r.UserID, &r.Date, &r.Title, &r.Mood, &r.Body,
				&r.CreatedAt, &r.UpdatedAt)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
		FieldArgs: func(r *DiaryEntry) []any {
			return []any{r.Date, r.Title, r.Mood, r.Body}
		},
	}
}
