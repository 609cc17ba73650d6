package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"desc returns DESC", "desc", "DESC"},
		{"invalid value returns DESC", "sideways", "DESC"},
		{"injection attempt returns DESC", "ASC; DROP TABLE users;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortOrder(tt.input))
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultField string
		expected     string
	}{
		{"empty string returns default", "", "created_at", "created_at"},
		{"whitelisted field returns field", "price", "created_at", "price"},
		{"whitelisted field title returns field", "title", "created_at", "title"},
		{"unknown field returns default", "password_hash", "created_at", "created_at"},
		{"subquery returns default", "(SELECT password_hash FROM users LIMIT 1)", "created_at", "created_at"},
		{"stacked statement returns default", "id; DROP TABLE users;--", "created_at", "created_at"},
		{"column with trailing expression returns default", "price, (SELECT 1)", "created_at", "created_at"},
		{"case sensitive", "TITLE", "created_at", "created_at"},
		{"whitespace around valid field returns field", "  price  ", "created_at", "price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateSortField(tt.input, ProductSortFields, tt.defaultField))
		})
	}
}
