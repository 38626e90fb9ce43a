package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	database "github.com/moneymate/moneymate-server/db"
	"github.com/moneymate/moneymate-server/internal/finance/application"
	"github.com/moneymate/moneymate-server/internal/finance/infrastructure"
	"github.com/moneymate/moneymate-server/internal/finance/interfaces"
	"github.com/moneymate/moneymate-server/internal/user"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		logrus.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func registerRoutes(
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	budgetHandler *interfaces.BudgetHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/register", userHandler.HandleRegister).Methods("POST")
	r.HandleFunc("/transactions", transactionHandler.CreateTransaction).Methods("POST")
	r.HandleFunc("/transactions/{email}", transactionHandler.GetUserTransactions).Methods("GET")
	r.HandleFunc("/transactions/{id}", transactionHandler.UpdateTransaction).Methods("PUT")
	r.HandleFunc("/transactions/{id}", transactionHandler.DeleteTransaction).Methods("DELETE")
	r.HandleFunc("/budgets", budgetHandler.CreateBudget).Methods("POST")
	r.HandleFunc("/budgets", budgetHandler.GetBudgets).Methods("GET")
	r.HandleFunc("/budgets/{id}", budgetHandler.DeleteBudget).Methods("DELETE")
	r.HandleFunc("/ready", handleReady).Methods("GET")
	return r
}

func startHealthScheduler(dbService *database.DBService, logger *logrus.Logger) error {
	c := cron.New()
	_, err := c.AddFunc("@every 5m", func() {
		stats := dbService.Health()
		if stats["status"] != "up" {
			logger.Warnf("Database health check failed: %s", stats["error"])
		} else {
			logger.Debug("Database health check passed")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	logger := newLogger()

	if err := checkConfiguration(); err != nil {
		logger.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		logger.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		logger.Fatalf("Could not run migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	budgetRepo := infrastructure.NewBudgetRepository(dbService.DB)

	transactionService := application.NewTransactionService(transactionRepo, budgetRepo, userService, logger)
	budgetService := application.NewBudgetService(budgetRepo)

	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	budgetHandler := interfaces.NewBudgetHandler(budgetService, respondJSON, respondError)

	router := registerRoutes(userHandler, transactionHandler, budgetHandler)
	router.Use(loggingMiddleware(logger))

	if err := startHealthScheduler(dbService, logger); err != nil {
		logger.Fatalf("Scheduler didn't start, stopping the app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Server starting on port %s...", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
