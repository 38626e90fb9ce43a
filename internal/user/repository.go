package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type Repository interface {
	createUser(user *User) error
	getUserByEmail(email string) (*User, error)
	appendTransaction(email, transactionID string) error
	removeTransaction(email, transactionID string) error
	transactionIDs(email string) ([]string, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (email, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(query, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}

	return nil
}

func (r *userRepository) getUserByEmail(email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}

// appendTransaction links a transaction id to the user's ledger. The insert
// resolves the user in the same statement, so an unknown email simply affects
// zero rows and maps to ErrUserNotFound.
func (r *userRepository) appendTransaction(email, transactionID string) error {
	query := `
		INSERT INTO user_transactions (user_id, transaction_id)
		SELECT id, $2 FROM users WHERE email = $1
	`
	result, err := r.db.Exec(query, email, transactionID)
	if err != nil {
		return fmt.Errorf("could not link transaction to user: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not link transaction to user: %v", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// removeTransaction drops every ledger occurrence of the transaction id for
// the given user.
func (r *userRepository) removeTransaction(email, transactionID string) error {
	query := `
		DELETE FROM user_transactions
		USING users
		WHERE user_transactions.user_id = users.id
		  AND users.email = $1
		  AND user_transactions.transaction_id = $2
	`
	_, err := r.db.Exec(query, email, transactionID)
	if err != nil {
		return fmt.Errorf("could not unlink transaction from user: %v", err)
	}
	return nil
}

func (r *userRepository) transactionIDs(email string) ([]string, error) {
	query := `
		SELECT ut.transaction_id
		FROM user_transactions ut
		JOIN users u ON u.id = ut.user_id
		WHERE u.email = $1
		ORDER BY ut.position
	`
	rows, err := r.db.Query(query, email)
	if err != nil {
		return nil, fmt.Errorf("could not read user transactions: %v", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("could not read user transactions: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
