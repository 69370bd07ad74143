package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		count     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of many", 120, 1, 25, 25, 5, true, false},
		{"middle page", 120, 3, 25, 25, 5, true, true},
		{"last page", 120, 5, 25, 20, 5, false, true},
		{"empty result still one page", 0, 1, 25, 0, 1, false, false},
		{"bad inputs normalized", 10, 0, 0, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage, tt.count)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantNext, got.HasNext)
			assert.Equal(t, tt.wantPrev, got.HasPrev)
			assert.Equal(t, tt.count, got.Count)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}
