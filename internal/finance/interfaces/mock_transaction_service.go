package interfaces

import (
	"github.com/moneymate/moneymate-server/internal/finance/domain"
)

// MockTransactionService lets handler tests script each operation.
type MockTransactionService struct {
	CreateFn func(email string, transaction *domain.Transaction) (*domain.Transaction, error)
	GetFn    func(email string) ([]domain.Transaction, error)
	UpdateFn func(transactionID string, transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteFn func(transactionID, email string) (*domain.Transaction, error)
}

func (m *MockTransactionService) CreateTransaction(email string, transaction *domain.Transaction) (*domain.Transaction, error) {
	return m.CreateFn(email, transaction)
}

func (m *MockTransactionService) GetUserTransactions(email string) ([]domain.Transaction, error) {
	return m.GetFn(email)
}

func (m *MockTransactionService) UpdateTransaction(transactionID string, transaction *domain.Transaction) (*domain.Transaction, error) {
	return m.UpdateFn(transactionID, transaction)
}

func (m *MockTransactionService) DeleteTransaction(transactionID, email string) (*domain.Transaction, error) {
	return m.DeleteFn(transactionID, email)
}
