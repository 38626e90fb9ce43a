package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
	"github.com/moneymate/moneymate-server/internal/finance/infrastructure"
)

func TestCreateBudget_AssignsIDAndZeroSpent(t *testing.T) {
	repo := infrastructure.NewMockBudgetRepository()
	service := NewBudgetService(repo)

	created, err := service.CreateBudget(&domain.Budget{
		Category:  "food",
		Amount:    500,
		Spent:     99, // ignored, a new budget always starts at zero
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0.0, created.Spent)

	budgets, err := service.GetBudgets()
	assert.NoError(t, err)
	assert.Len(t, budgets, 1)
}

func TestCreateBudget_Invalid(t *testing.T) {
	service := NewBudgetService(infrastructure.NewMockBudgetRepository())

	_, err := service.CreateBudget(&domain.Budget{
		Category:  "",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, financeErrors.IsValidationError(err))
}

func TestGetBudgets_EmptyIsNotNil(t *testing.T) {
	service := NewBudgetService(infrastructure.NewMockBudgetRepository())

	budgets, err := service.GetBudgets()
	assert.NoError(t, err)
	assert.NotNil(t, budgets)
	assert.Empty(t, budgets)
}
