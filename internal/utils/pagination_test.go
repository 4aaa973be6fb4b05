// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page, limit int
		start, end  int
	}{
		{"first page", 10, 1, 3, 0, 3},
		{"middle page", 10, 2, 3, 3, 6},
		{"short last page", 10, 4, 3, 9, 10},
		{"past the end", 10, 9, 3, 10, 10},
		{"empty", 0, 1, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.total, PaginationParams{Page: tt.page, Limit: tt.limit})
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]int{1, 2, 3}, 10, PaginationParams{Page: 1, Limit: 3})
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 4, result.TotalPages)
}
