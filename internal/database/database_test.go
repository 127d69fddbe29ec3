package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_UnsupportedDriver(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{"Empty", ""},
		{"Sqlite", "sqlite3"},
		{"Typo", "postgresql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Connect(Config{Driver: tt.driver})
			assert.ErrorContains(t, err, "unsupported database driver")
		})
	}
}
