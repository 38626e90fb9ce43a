package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction domain.Transaction) error {
	_, err := r.db.Exec(
		`INSERT INTO transactions (id, category, amount, description, date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		transaction.ID, transaction.Category, transaction.Amount, transaction.Description,
		transaction.Date, transaction.CreatedAt, transaction.UpdatedAt,
	)
	return err
}

func (r *TransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := r.db.QueryRow(
		`SELECT id, category, amount, description, date, created_at, updated_at
        FROM transactions WHERE id = $1`, transactionID,
	).Scan(&transaction.ID, &transaction.Category, &transaction.Amount, &transaction.Description,
		&transaction.Date, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByIDs(transactionIDs []string) ([]domain.Transaction, error) {
	if len(transactionIDs) == 0 {
		return []domain.Transaction{}, nil
	}

	placeholders := make([]string, len(transactionIDs))
	args := make([]interface{}, len(transactionIDs))
	for i, id := range transactionIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(
		`SELECT id, category, amount, description, date, created_at, updated_at
        FROM transactions WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.Category, &transaction.Amount, &transaction.Description,
			&transaction.Date, &transaction.CreatedAt, &transaction.UpdatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(transaction domain.Transaction) (*domain.Transaction, error) {
	var updated domain.Transaction
	err := r.db.QueryRow(
		`UPDATE transactions
        SET category = $1, amount = $2, description = $3, date = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING id, category, amount, description, date, created_at, updated_at`,
		transaction.Category, transaction.Amount, transaction.Description, transaction.Date, transaction.ID,
	).Scan(&updated.ID, &updated.Category, &updated.Amount, &updated.Description,
		&updated.Date, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *TransactionRepository) Delete(transactionID string) (*domain.Transaction, error) {
	var deleted domain.Transaction
	err := r.db.QueryRow(
		`DELETE FROM transactions WHERE id = $1
        RETURNING id, category, amount, description, date, created_at, updated_at`,
		transactionID,
	).Scan(&deleted.ID, &deleted.Category, &deleted.Amount, &deleted.Description,
		&deleted.Date, &deleted.CreatedAt, &deleted.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
