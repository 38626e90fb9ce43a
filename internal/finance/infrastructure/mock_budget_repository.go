package infrastructure

import (
	"sync"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

// MockBudgetRepository is an in-memory repository used by service tests. The
// mutex around IncrementSpent stands in for the database's atomic increment.
type MockBudgetRepository struct {
	mu      sync.Mutex
	Budgets map[string]domain.Budget
}

func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{Budgets: make(map[string]domain.Budget)}
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Budgets[budget.ID] = budget
	return nil
}

func (m *MockBudgetRepository) FindByID(budgetID string) (*domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	budget, ok := m.Budgets[budgetID]
	if !ok {
		return nil, financeErrors.ErrBudgetNotFound
	}
	return &budget, nil
}

func (m *MockBudgetRepository) FindByCategory(category string) ([]domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		if budget.Category == category {
			budgets = append(budgets, budget)
		}
	}
	return budgets, nil
}

func (m *MockBudgetRepository) FindAll() ([]domain.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var budgets []domain.Budget
	for _, budget := range m.Budgets {
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

func (m *MockBudgetRepository) Delete(budgetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Budgets[budgetID]; !ok {
		return financeErrors.ErrBudgetNotFound
	}
	delete(m.Budgets, budgetID)
	return nil
}

func (m *MockBudgetRepository) IncrementSpent(budgetID string, delta float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	budget, ok := m.Budgets[budgetID]
	if !ok {
		return financeErrors.ErrBudgetNotFound
	}
	budget.Spent += delta
	m.Budgets[budgetID] = budget
	return nil
}
