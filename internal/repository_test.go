//go:build integration

package user

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"user-api/pkg/cerror"
)

func setupRepository(t *testing.T) Repository {
	t.Helper()

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		err := pgContainer.Terminate(ctx)
		require.NoError(t, err)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() {
		err := db.Close()
		require.NoError(t, err)
	})

	userRepository := NewRepository(db)
	err = userRepository.Migrate(ctx)
	require.NoError(t, err)

	return userRepository
}

func buildUserRow(email string) *UserRow {
	return &UserRow{
		Id:           uuid.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$12$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         RoleUser,
		IsActive:     true,
	}
}

func TestRepository_InsertUser(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		insertedUser, err := userRepository.InsertUser(ctx, buildUserRow("insert@test.com"))

		require.NoError(t, err)
		assert.NotEmpty(t, insertedUser.Id)
		assert.Equal(t, "insert@test.com", insertedUser.Email)
		assert.Equal(t, RoleUser, insertedUser.Role)
		assert.True(t, insertedUser.IsActive)
		assert.Nil(t, insertedUser.LastLoginAt)
		assert.False(t, insertedUser.CreatedAt.IsZero())
	})

	t.Run("when email is already taken should return conflict error", func(t *testing.T) {
		_, err := userRepository.InsertUser(ctx, buildUserRow("duplicate@test.com"))
		require.NoError(t, err)

		_, err = userRepository.InsertUser(ctx, buildUserRow("duplicate@test.com"))

		assert.Equal(t, cerror.ErrorUserAlreadyExists, err)
	})
}

func TestRepository_FindUserWithEmail(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		insertedUser, err := userRepository.InsertUser(ctx, buildUserRow("find-email@test.com"))
		require.NoError(t, err)

		foundUser, err := userRepository.FindUserWithEmail(ctx, "find-email@test.com")

		require.NoError(t, err)
		require.NotNil(t, foundUser)
		assert.Equal(t, insertedUser.Id, foundUser.Id)
		assert.NotEmpty(t, foundUser.PasswordHash)
	})

	t.Run("when email is unknown should return nil without error", func(t *testing.T) {
		foundUser, err := userRepository.FindUserWithEmail(ctx, "unknown@test.com")

		assert.NoError(t, err)
		assert.Nil(t, foundUser)
	})
}

func TestRepository_FindUserWithId(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		insertedUser, err := userRepository.InsertUser(ctx, buildUserRow("find-id@test.com"))
		require.NoError(t, err)

		foundUser, err := userRepository.FindUserWithId(ctx, insertedUser.Id)

		require.NoError(t, err)
		assert.Equal(t, insertedUser.Email, foundUser.Email)
		assert.Empty(t, foundUser.PasswordHash)
	})

	t.Run("when id is unknown should return not found error", func(t *testing.T) {
		_, err := userRepository.FindUserWithId(ctx, uuid.New().String())

		assert.Equal(t, cerror.ErrorUserNotFound, err)
	})
}

func TestRepository_FindAllUsers(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := userRepository.InsertUser(ctx, buildUserRow(fmt.Sprintf("list-%d@test.com", i)))
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	t.Run("happy path", func(t *testing.T) {
		users, total, err := userRepository.FindAllUsers(ctx, 1, 3)

		require.NoError(t, err)
		assert.Len(t, users, 3)
		assert.Equal(t, int64(5), total)
	})

	t.Run("should return newest users first", func(t *testing.T) {
		users, _, err := userRepository.FindAllUsers(ctx, 1, 5)

		require.NoError(t, err)
		require.Len(t, users, 5)
		for i := 1; i < len(users); i++ {
			assert.False(t, users[i-1].CreatedAt.Before(users[i].CreatedAt))
		}
	})

	t.Run("when page is past the end should return empty slice", func(t *testing.T) {
		users, total, err := userRepository.FindAllUsers(ctx, 3, 5)

		require.NoError(t, err)
		assert.Empty(t, users)
		assert.Equal(t, int64(5), total)
	})
}

func TestRepository_UpdateLastLogin(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	insertedUser, err := userRepository.InsertUser(ctx, buildUserRow("last-login@test.com"))
	require.NoError(t, err)

	lastLoginAt := time.Now().UTC().Truncate(time.Millisecond)
	err = userRepository.UpdateLastLogin(ctx, insertedUser.Id, lastLoginAt)
	require.NoError(t, err)

	foundUser, err := userRepository.FindUserWithId(ctx, insertedUser.Id)
	require.NoError(t, err)
	require.NotNil(t, foundUser.LastLoginAt)
	assert.WithinDuration(t, lastLoginAt, *foundUser.LastLoginAt, time.Second)
}

func TestRepository_CountUsersByRole(t *testing.T) {
	userRepository := setupRepository(t)
	ctx := context.Background()

	adminUser := buildUserRow("count-admin@test.com")
	adminUser.Role = RoleAdmin
	_, err := userRepository.InsertUser(ctx, adminUser)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = userRepository.InsertUser(ctx, buildUserRow(fmt.Sprintf("count-%d@test.com", i)))
		require.NoError(t, err)
	}

	counts, err := userRepository.CountUsersByRole(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Admin)
	assert.Equal(t, int64(2), counts.User)
	assert.Equal(t, int64(3), counts.Total)
}
