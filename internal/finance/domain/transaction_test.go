package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), date)

	date, err = ParseDate("2024-01-15T10:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), date)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestValidateForUpdate(t *testing.T) {
	valid := Transaction{Category: "food", Amount: 50, Description: "groceries"}
	assert.NoError(t, valid.ValidateForUpdate())

	// The date is deliberately not required.
	assert.True(t, valid.Date.IsZero())

	missingCategory := valid
	missingCategory.Category = ""
	assert.Error(t, missingCategory.ValidateForUpdate())

	missingAmount := valid
	missingAmount.Amount = 0
	assert.Error(t, missingAmount.ValidateForUpdate())

	missingDescription := valid
	missingDescription.Description = ""
	assert.Error(t, missingDescription.ValidateForUpdate())
}
