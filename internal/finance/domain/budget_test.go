package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetContains_InclusiveBoundaries(t *testing.T) {
	budget := Budget{
		Category:  "food",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, budget.Contains(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)), "start boundary should be inside the window")
	assert.True(t, budget.Contains(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)), "end boundary should be inside the window")
	assert.True(t, budget.Contains(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.Contains(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, budget.Contains(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBudgetValidate(t *testing.T) {
	budget := Budget{
		Category:  "food",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, budget.Validate())

	budget.Category = ""
	assert.Error(t, budget.Validate())

	budget.Category = "food"
	budget.EndDate = budget.StartDate.AddDate(0, 0, -1)
	assert.Error(t, budget.Validate())
}
