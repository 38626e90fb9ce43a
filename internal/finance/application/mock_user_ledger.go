package application

import (
	"sync"

	"github.com/moneymate/moneymate-server/internal/user"
)

// MockUserLedger is an in-memory UserLedger used by service tests.
type MockUserLedger struct {
	mu     sync.Mutex
	Users  map[string]*user.User
	Ledger map[string][]string
}

func NewMockUserLedger(emails ...string) *MockUserLedger {
	m := &MockUserLedger{
		Users:  make(map[string]*user.User),
		Ledger: make(map[string][]string),
	}
	for _, email := range emails {
		m.Users[email] = &user.User{ID: email, Email: email}
	}
	return m
}

func (m *MockUserLedger) FindByEmail(email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *MockUserLedger) AppendTransaction(email, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[email]; !ok {
		return user.ErrUserNotFound
	}
	m.Ledger[email] = append(m.Ledger[email], transactionID)
	return nil
}

func (m *MockUserLedger) RemoveTransaction(email, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []string
	for _, id := range m.Ledger[email] {
		if id != transactionID {
			kept = append(kept, id)
		}
	}
	m.Ledger[email] = kept
	return nil
}

func (m *MockUserLedger) TransactionIDs(email string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Ledger[email]...), nil
}
