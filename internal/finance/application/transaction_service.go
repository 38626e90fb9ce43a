package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
	"github.com/moneymate/moneymate-server/internal/user"
)

// UserLedger is the slice of the user service the transaction flow depends
// on: resolving a user by email and maintaining the ordered list of
// transaction ids owned by that user.
type UserLedger interface {
	FindByEmail(email string) (*user.User, error)
	AppendTransaction(email, transactionID string) error
	RemoveTransaction(email, transactionID string) error
	TransactionIDs(email string) ([]string, error)
}

type TransactionService struct {
	repo       domain.TransactionRepository
	budgetRepo domain.BudgetRepository
	ledger     UserLedger
	log        *logrus.Logger
}

func NewTransactionService(repo domain.TransactionRepository, budgetRepo domain.BudgetRepository, ledger UserLedger, log *logrus.Logger) *TransactionService {
	return &TransactionService{repo: repo, budgetRepo: budgetRepo, ledger: ledger, log: log}
}

// wrapStoreErr keeps sentinel errors recognizable for the HTTP layer and
// wraps everything else with the failing operation.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, financeErrors.ErrTransactionNotFound) ||
		errors.Is(err, financeErrors.ErrBudgetNotFound) ||
		errors.Is(err, user.ErrUserNotFound) {
		return err
	}
	return financeErrors.NewStoreError(op, err)
}

// CreateTransaction persists the transaction, applies its amount to every
// budget of the same category whose window contains the transaction date, and
// links the new id to the owning user.
//
// The three writes commit independently. In particular, when the user lookup
// fails after the transaction and the budget increments have been persisted,
// those writes stay in place and the caller only gets the lookup error.
func (s *TransactionService) CreateTransaction(email string, transaction *domain.Transaction) (*domain.Transaction, error) {
	if email == "" {
		return nil, financeErrors.ErrMissingIdentity
	}

	transaction.ID = uuid.NewString()
	now := time.Now().UTC()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	if err := s.repo.Save(*transaction); err != nil {
		return nil, wrapStoreErr("insert transaction", err)
	}

	budgets, err := s.budgetRepo.FindByCategory(transaction.Category)
	if err != nil {
		return nil, wrapStoreErr("find budgets", err)
	}
	for _, budget := range budgets {
		if !budget.Contains(transaction.Date) {
			continue
		}
		if err := s.budgetRepo.IncrementSpent(budget.ID, transaction.Amount); err != nil {
			return nil, wrapStoreErr("increment budget spent", err)
		}
		s.log.WithFields(logrus.Fields{
			"budget_id":      budget.ID,
			"transaction_id": transaction.ID,
			"amount":         transaction.Amount,
		}).Debug("budget spent incremented")
	}

	if err := s.ledger.AppendTransaction(email, transaction.ID); err != nil {
		return nil, wrapStoreErr("link transaction to user", err)
	}

	s.log.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"category":       transaction.Category,
	}).Info("transaction created")
	return transaction, nil
}

func (s *TransactionService) GetUserTransactions(email string) ([]domain.Transaction, error) {
	if _, err := s.ledger.FindByEmail(email); err != nil {
		return nil, wrapStoreErr("find user", err)
	}

	ids, err := s.ledger.TransactionIDs(email)
	if err != nil {
		return nil, wrapStoreErr("read user transactions", err)
	}
	if len(ids) == 0 {
		return []domain.Transaction{}, nil
	}

	transactions, err := s.repo.FindByIDs(ids)
	if err != nil {
		return nil, wrapStoreErr("find transactions", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// UpdateTransaction replaces category, amount, description and date on the
// stored record. It deliberately does not touch budgets: the previous
// amount's contribution to spent is kept and the new one is not applied.
func (s *TransactionService) UpdateTransaction(transactionID string, transaction *domain.Transaction) (*domain.Transaction, error) {
	if err := transaction.ValidateForUpdate(); err != nil {
		return nil, err
	}

	transaction.ID = transactionID
	updated, err := s.repo.Update(*transaction)
	if err != nil {
		return nil, wrapStoreErr("update transaction", err)
	}
	return updated, nil
}

// DeleteTransaction removes the record and every ledger occurrence of its id
// for the verified user. Budget spent accumulated by the transaction is not
// reversed.
func (s *TransactionService) DeleteTransaction(transactionID, email string) (*domain.Transaction, error) {
	if email == "" {
		return nil, financeErrors.ErrMissingIdentity
	}
	if _, err := s.ledger.FindByEmail(email); err != nil {
		return nil, wrapStoreErr("find user", err)
	}

	deleted, err := s.repo.Delete(transactionID)
	if err != nil {
		return nil, wrapStoreErr("delete transaction", err)
	}

	if err := s.ledger.RemoveTransaction(email, transactionID); err != nil {
		return nil, wrapStoreErr("unlink transaction from user", err)
	}

	s.log.WithFields(logrus.Fields{
		"transaction_id": transactionID,
	}).Info("transaction deleted")
	return deleted, nil
}
