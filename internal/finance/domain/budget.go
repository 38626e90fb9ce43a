package domain

import (
	"time"

	"github.com/moneymate/moneymate-server/internal/finance/errors"
)

type BudgetRepository interface {
	Save(budget Budget) error
	FindByID(budgetID string) (*Budget, error)
	FindByCategory(category string) ([]Budget, error)
	FindAll() ([]Budget, error)
	Delete(budgetID string) error
	IncrementSpent(budgetID string, delta float64) error
}

type Budget struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Spent     float64   `json:"spent"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Budget) Validate() error {
	if b.Category == "" {
		return errors.NewValidationError("Category is required")
	}
	if b.EndDate.Before(b.StartDate) {
		return errors.NewValidationError("End date must not be before start date")
	}
	return nil
}

// Contains reports whether the date falls inside the budget window. Both
// boundaries are inclusive, so a transaction dated exactly on the start or
// end of the window still counts against the budget.
func (b *Budget) Contains(date time.Time) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}
