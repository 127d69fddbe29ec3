// Package csvutil converts in-memory record lists into CSV documents.
//
// The marshaller is pure: it performs no I/O and knows nothing about HTTP.
// Transport concerns (content type, attachment filename) belong to the
// export handlers.
package csvutil

import (
	"bytes"
	"encoding/csv"

	apperrors "github.com/lifebook/lifebook/internal/errors"
)

// Field describes one CSV column: a header label and an extractor producing
// the cell value for a record. Extractors must map missing values to "".
type Field[T any] struct {
	Label   string
	Extract func(record T) string
}

// Marshal renders records into a CSV document. The header row carries the
// field labels in order; each record row applies the extractors in the same
// order. Values containing commas, quotes or line breaks are quoted with
// internal quotes doubled. An empty record list yields just the header row.
func Marshal[T any](records []T, fields []Field[T]) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Label
	}
	if err := writer.Write(header); err != nil {
		return "", apperrors.Wrap(err, "failed to write csv header")
	}

	row := make([]string, len(fields))
	for _, record := range records {
		for i, field := range fields {
			row[i] = field.Extract(record)
		}
		if err := writer.Write(row); err != nil {
			return "", apperrors.Wrap(err, "failed to write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", apperrors.Wrap(err, "failed to flush csv writer")
	}

	return buf.String(), nil
}
