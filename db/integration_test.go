package database

import (
	"context"
	"database/sql"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/moneymate/moneymate-server/internal/finance/application"
	"github.com/moneymate/moneymate-server/internal/finance/domain"
	"github.com/moneymate/moneymate-server/internal/finance/infrastructure"
	"github.com/moneymate/moneymate-server/internal/user"
)

func setupTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("moneymate_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())

	require.NoError(t, RunMigrations(db))
	return db
}

func TestReconciliationAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := setupTestDatabase(t)

	userService := user.NewUserService(user.NewUserRepository(db))
	transactionRepo := infrastructure.NewTransactionRepository(db)
	budgetRepo := infrastructure.NewBudgetRepository(db)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	service := application.NewTransactionService(transactionRepo, budgetRepo, userService, logger)

	_, err := userService.Register("alice@example.com", "s3cret")
	require.NoError(t, err)

	budget := domain.Budget{
		ID:        uuid.NewString(),
		Category:  "food",
		Amount:    500,
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, budgetRepo.Save(budget))

	created, err := service.CreateTransaction("alice@example.com", &domain.Transaction{
		Category:    "food",
		Amount:      50,
		Description: "groceries",
		Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	stored, err := budgetRepo.FindByID(budget.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stored.Spent)

	transactions, err := service.GetUserTransactions("alice@example.com")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, created.ID, transactions[0].ID)

	// Concurrent creates accumulate without lost updates thanks to the
	// in-database increment.
	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := service.CreateTransaction("alice@example.com", &domain.Transaction{
				Category: "food",
				Amount:   1,
				Date:     time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err = budgetRepo.FindByID(budget.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0+workers, stored.Spent)

	deleted, err := service.DeleteTransaction(created.ID, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	transactions, err = service.GetUserTransactions("alice@example.com")
	require.NoError(t, err)
	assert.Len(t, transactions, workers)

	// Budget spend is not reversed on delete.
	stored, err = budgetRepo.FindByID(budget.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0+workers, stored.Spent)
}
