package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

func (s *BudgetService) CreateBudget(budget *domain.Budget) (*domain.Budget, error) {
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	budget.ID = uuid.NewString()
	budget.Spent = 0
	budget.CreatedAt = time.Now().UTC()
	if err := s.repo.Save(*budget); err != nil {
		return nil, financeErrors.NewStoreError("insert budget", err)
	}
	return budget, nil
}

func (s *BudgetService) GetBudgets() ([]domain.Budget, error) {
	budgets, err := s.repo.FindAll()
	if err != nil {
		return nil, financeErrors.NewStoreError("find budgets", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *BudgetService) DeleteBudget(budgetID string) error {
	return s.repo.Delete(budgetID)
}
