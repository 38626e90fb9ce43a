package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users  map[string]*User
	ledger map[string][]string
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User), ledger: make(map[string][]string)}
}

func (m *mockRepository) createUser(user *User) error {
	user.ID = "user-" + user.Email
	m.users[user.Email] = user
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (m *mockRepository) appendTransaction(email, transactionID string) error {
	if _, ok := m.users[email]; !ok {
		return ErrUserNotFound
	}
	m.ledger[email] = append(m.ledger[email], transactionID)
	return nil
}

func (m *mockRepository) removeTransaction(email, transactionID string) error {
	var kept []string
	for _, id := range m.ledger[email] {
		if id != transactionID {
			kept = append(kept, id)
		}
	}
	m.ledger[email] = kept
	return nil
}

func (m *mockRepository) transactionIDs(email string) ([]string, error) {
	return m.ledger[email], nil
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	u, err := service.Register("alice@example.com", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestRegister_Validation(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("not-an-email", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Register("alice@example.com", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, err = service.Register("alice@example.com", "s3cret")
	assert.NoError(t, err)
	_, err = service.Register("alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRemoveTransaction_RemovesAllOccurrences(t *testing.T) {
	repo := newMockRepository()
	service := NewUserService(repo)

	_, err := service.Register("alice@example.com", "s3cret")
	assert.NoError(t, err)

	assert.NoError(t, service.AppendTransaction("alice@example.com", "tx-1"))
	assert.NoError(t, service.AppendTransaction("alice@example.com", "tx-2"))
	assert.NoError(t, service.AppendTransaction("alice@example.com", "tx-1"))

	assert.NoError(t, service.RemoveTransaction("alice@example.com", "tx-1"))

	ids, err := service.TransactionIDs("alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []string{"tx-2"}, ids)
}
