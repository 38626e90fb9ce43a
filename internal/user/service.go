package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength = 254
	minEmailLength = 3
	bcryptCost     = 12
)

var (
	ErrInvalidEmail       = fmt.Errorf("email address is not valid")
	ErrEmailLength        = fmt.Errorf("email address is too long or too short, max length: %d, min length: %d", maxEmailLength, minEmailLength)
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordRequired   = errors.New("password is required")
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(email, password string) (*User, error)
	FindByEmail(email string) (*User, error)
	AppendTransaction(email, transactionID string) error
	RemoveTransaction(email, transactionID string) error
	TransactionIDs(email string) ([]string, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return ErrEmailLength
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if _, err := s.repo.getUserByEmail(email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) FindByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *service) AppendTransaction(email, transactionID string) error {
	return s.repo.appendTransaction(email, transactionID)
}

func (s *service) RemoveTransaction(email, transactionID string) error {
	return s.repo.removeTransaction(email, transactionID)
}

func (s *service) TransactionIDs(email string) ([]string, error) {
	return s.repo.transactionIDs(email)
}
