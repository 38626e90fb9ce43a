package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, category, amount, spent, start_date, end_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		budget.ID, budget.Category, budget.Amount, budget.Spent,
		budget.StartDate, budget.EndDate, budget.CreatedAt,
	)
	return err
}

func (r *BudgetRepository) FindByID(budgetID string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`SELECT id, category, amount, spent, start_date, end_date, created_at
        FROM budgets WHERE id = $1`, budgetID,
	).Scan(&budget.ID, &budget.Category, &budget.Amount, &budget.Spent,
		&budget.StartDate, &budget.EndDate, &budget.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrBudgetNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindByCategory matches the category literally, no trimming or case folding.
func (r *BudgetRepository) FindByCategory(category string) ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, category, amount, spent, start_date, end_date, created_at
        FROM budgets WHERE category = $1`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBudgets(rows)
}

func (r *BudgetRepository) FindAll() ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, category, amount, spent, start_date, end_date, created_at
        FROM budgets ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBudgets(rows)
}

func (r *BudgetRepository) Delete(budgetID string) error {
	result, err := r.db.Exec(`DELETE FROM budgets WHERE id = $1`, budgetID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return financeErrors.ErrBudgetNotFound
	}
	return nil
}

// IncrementSpent applies the delta in the database, so concurrent
// transactions against the same budget accumulate without lost updates.
func (r *BudgetRepository) IncrementSpent(budgetID string, delta float64) error {
	result, err := r.db.Exec(`UPDATE budgets SET spent = spent + $1 WHERE id = $2`, delta, budgetID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return financeErrors.ErrBudgetNotFound
	}
	return nil
}

func scanBudgets(rows *sql.Rows) ([]domain.Budget, error) {
	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.Category, &budget.Amount, &budget.Spent,
			&budget.StartDate, &budget.EndDate, &budget.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}
