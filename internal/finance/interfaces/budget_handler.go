package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/moneymate/moneymate-server/internal/finance/domain"
	financeErrors "github.com/moneymate/moneymate-server/internal/finance/errors"
)

type BudgetServiceInterface interface {
	CreateBudget(budget *domain.Budget) (*domain.Budget, error)
	GetBudgets() ([]domain.Budget, error)
	DeleteBudget(budgetID string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewBudgetHandler(
	service BudgetServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *BudgetHandler {
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category  string  `json:"category"`
		Amount    float64 `json:"amount"`
		StartDate string  `json:"start_date"`
		EndDate   string  `json:"end_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, err := domain.ParseDate(req.StartDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := domain.ParseDate(req.EndDate)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	budget := domain.Budget{
		Category:  req.Category,
		Amount:    req.Amount,
		StartDate: startDate,
		EndDate:   endDate,
	}
	created, err := h.service.CreateBudget(&budget)
	if err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully created.",
		"data":    created,
	})
}

func (h *BudgetHandler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.service.GetBudgets()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budgets retrieved successfully.",
		"data":    budgets,
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := mux.Vars(r)["id"]

	if err := h.service.DeleteBudget(budgetID); err != nil {
		if errors.Is(err, financeErrors.ErrBudgetNotFound) {
			h.respondError(w, http.StatusNotFound, "Budget not found")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget deleted successfully.",
	})
}
