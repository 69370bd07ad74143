package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoanDuration(t *testing.T) {
	assert.Equal(t, 10*24*time.Hour, LoanDuration(BookCategoryShortTerm))
	assert.Equal(t, 30*24*time.Hour, LoanDuration(BookCategoryLongTerm))
}

func TestIsValidBookCategory(t *testing.T) {
	assert.True(t, IsValidBookCategory(BookCategoryShortTerm))
	assert.True(t, IsValidBookCategory(BookCategoryLongTerm))
	assert.False(t, IsValidBookCategory(0))
	assert.False(t, IsValidBookCategory(3))
}
