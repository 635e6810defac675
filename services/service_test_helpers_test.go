package services

import (
	"context"
	"testing"

	"github.com/firmdir-simple/database"
	"github.com/firmdir-simple/models"
	"github.com/firmdir-simple/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStore builds the relational backend on in-memory SQLite.
func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return repositories.NewGormStore(db)
}

func newTestUser(t *testing.T, store *repositories.Store, subject string) *models.User {
	t.Helper()
	user := &models.User{
		ID:      uuid.NewString(),
		Subject: subject,
		Email:   subject + "@example.com",
	}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func newTestCompany(t *testing.T, store *repositories.Store, ownerID string) *models.Company {
	t.Helper()
	company := &models.Company{
		ID:          uuid.NewString(),
		Name:        "Acme",
		Description: "desc",
		OwnerID:     ownerID,
	}
	require.NoError(t, store.Companies.Create(context.Background(), company))
	return company
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
