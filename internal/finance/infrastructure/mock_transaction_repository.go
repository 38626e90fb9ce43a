package infrastructure

import (
	"sync"
	"time"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

// MockTransactionRepository is an in-memory repository used by service tests.
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions map[string]domain.Transaction
	SaveErr      error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: make(map[string]domain.Transaction)}
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	transaction, ok := m.Transactions[transactionID]
	if !ok {
		return nil, financeErrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

func (m *MockTransactionRepository) FindByIDs(transactionIDs []string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var transactions []domain.Transaction
	for _, id := range transactionIDs {
		if transaction, ok := m.Transactions[id]; ok {
			transactions = append(transactions, transaction)
		}
	}
	return transactions, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.Transactions[transaction.ID]
	if !ok {
		return nil, financeErrors.ErrTransactionNotFound
	}
	existing.Category = transaction.Category
	existing.Amount = transaction.Amount
	existing.Description = transaction.Description
	existing.Date = transaction.Date
	existing.UpdatedAt = time.Now().UTC()
	m.Transactions[existing.ID] = existing
	return &existing, nil
}

func (m *MockTransactionRepository) Delete(transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	transaction, ok := m.Transactions[transactionID]
	if !ok {
		return nil, financeErrors.ErrTransactionNotFound
	}
	delete(m.Transactions, transactionID)
	return &transaction, nil
}
