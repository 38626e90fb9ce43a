package interfaces

import (
	"github.com/moneymate/moneymate-server/internal/finance/domain"
)

type MockBudgetService struct {
	CreateFn func(budget *domain.Budget) (*domain.Budget, error)
	GetFn    func() ([]domain.Budget, error)
	DeleteFn func(budgetID string) error
}

func (m *MockBudgetService) CreateBudget(budget *domain.Budget) (*domain.Budget, error) {
	return m.CreateFn(budget)
}

func (m *MockBudgetService) GetBudgets() ([]domain.Budget, error) {
	return m.GetFn()
}

func (m *MockBudgetService) DeleteBudget(budgetID string) error {
	return m.DeleteFn(budgetID)
}
