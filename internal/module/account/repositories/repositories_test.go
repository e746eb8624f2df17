package repositories_test

import (
	"context"
	"testing"
	"time"

	"railway-reservation/config"
	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/account/repositories"
	"railway-reservation/internal/pkg/database"
	"railway-reservation/internal/pkg/errors"
	log_internal "railway-reservation/internal/pkg/log"
	"railway-reservation/internal/pkg/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqlRepo(t *testing.T) repositories.Repositories {
	t.Helper()
	db, err := database.GetConnection(context.Background(), &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.New(db, log_internal.New(log_internal.Setup()))
}

func TestRepositories(t *testing.T) {
	variants := map[string]func(t *testing.T) repositories.Repositories{
		"sql": sqlRepo,
		"memory": func(t *testing.T) repositories.Repositories {
			return repositories.NewMemory(memstore.New())
		},
	}

	for name, newRepo := range variants {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			createdAt := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

			count, err := repo.CountAccounts(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, count)

			require.NoError(t, repo.InsertAccount(ctx, entity.Account{Username: "alice", Password: "secret1", CreatedAt: createdAt}))

			err = repo.InsertAccount(ctx, entity.Account{Username: "alice", Password: "other12", CreatedAt: createdAt})
			assert.Equal(t, errors.ErrDuplicateUsername, err)

			account, err := repo.FindAccount(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, "alice", account.Username)
			assert.Equal(t, "secret1", account.Password)
			assert.True(t, createdAt.Equal(account.CreatedAt))

			missing, err := repo.FindAccount(ctx, "nobody")
			require.NoError(t, err)
			assert.Equal(t, entity.Account{}, missing)

			count, err = repo.CountAccounts(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}
