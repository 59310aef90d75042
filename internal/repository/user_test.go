package repository

import (
	"context"
	"testing"

	"gigboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Gig{},
		&models.Bid{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent transactions the way a row lock would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		user := &models.User{Name: "Alice Client", Email: "client@example.com", Password: "hash"}
		err := repo.Create(ctx, user)
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("CreateDuplicateEmail", func(t *testing.T) {
		dup := &models.User{Name: "Other Alice", Email: "client@example.com", Password: "hash"}
		err := repo.Create(ctx, dup)
		require.Error(t, err)

		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "client@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Alice Client", user.Name)
	})

	t.Run("GetByEmailMissingIsNilNil", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID", func(t *testing.T) {
		created, err := repo.GetByEmail(ctx, "client@example.com")
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, user.Email)
	})

	t.Run("GetByIDMissing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		require.Error(t, err)

		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
