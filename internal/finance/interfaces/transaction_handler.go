package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
	"github.com/moneymate/moneymate-server/internal/user"
)

type TransactionServiceInterface interface {
	CreateTransaction(email string, transaction *domain.Transaction) (*domain.Transaction, error)
	GetUserTransactions(email string) ([]domain.Transaction, error)
	UpdateTransaction(transactionID string, transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(transactionID, email string) (*domain.Transaction, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	if respondJSON == nil || respondError == nil {
		log.Fatal("Respond functions must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type transactionRequest struct {
	Email       string  `json:"email"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// handleServiceError maps service errors onto the HTTP surface: validation
// failures to 400, missing records to 404, anything else to 500 carrying the
// underlying cause message.
func (h *TransactionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsValidationError(err):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		h.respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, financeErrors.ErrTransactionNotFound):
		h.respondError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, financeErrors.ErrBudgetNotFound):
		h.respondError(w, http.StatusNotFound, "Budget not found")
	default:
		h.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := domain.Transaction{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != "" {
		date, err := domain.ParseDate(req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		transaction.Date = date
	}

	created, err := h.service.CreateTransaction(req.Email, &transaction)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    created,
	})
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	transactions, err := h.service.GetUserTransactions(email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := mux.Vars(r)["id"]

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := domain.Transaction{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != "" {
		date, err := domain.ParseDate(req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		transaction.Date = date
	}

	updated, err := h.service.UpdateTransaction(transactionID, &transaction)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    updated,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := mux.Vars(r)["id"]

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deleted, err := h.service.DeleteTransaction(transactionID, req.Email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction deleted successfully.",
		"data":    deleted,
	})
}
