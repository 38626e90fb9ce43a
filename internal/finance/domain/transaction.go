package domain

import (
	"time"

	"github.com/moneymate/moneymate-server/internal/finance/errors"
)

type TransactionRepository interface {
	Save(transaction Transaction) error
	FindByID(transactionID string) (*Transaction, error)
	FindByIDs(transactionIDs []string) ([]Transaction, error)
	Update(transaction Transaction) (*Transaction, error)
	Delete(transactionID string) (*Transaction, error)
}

type Transaction struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidateForUpdate mirrors the edit contract: category, amount and description
// are all required, the date is not.
func (t *Transaction) ValidateForUpdate() error {
	if t.Category == "" {
		return errors.NewValidationError("Category is required to update the transaction")
	}
	if t.Amount == 0 {
		return errors.NewValidationError("Amount is required to update the transaction")
	}
	if t.Description == "" {
		return errors.NewValidationError("Description is required to update the transaction")
	}
	return nil
}

// ParseDate accepts either a full RFC 3339 timestamp or a plain calendar date.
func ParseDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("Invalid date format, expected RFC 3339 or YYYY-MM-DD")
	}
	return date, nil
}
