package repositories

import (
	"testing"
	"time"

	"lawfirm_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	mustCreateUser(t, db, "dup@test.com", models.UserRoleClient)

	err := repo.Create(&models.User{
		Email:        "dup@test.com",
		Username:     "dup2",
		PasswordHash: "hash",
		Role:         models.UserRoleClient,
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_FindByRole(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	mustCreateUser(t, db, "l1@firm.com", models.UserRoleLawyer)
	mustCreateUser(t, db, "l2@firm.com", models.UserRoleLawyer)
	mustCreateUser(t, db, "c1@test.com", models.UserRoleClient)

	lawyers, err := repo.FindByRole(models.UserRoleLawyer, 0, 0)
	require.NoError(t, err)
	assert.Len(t, lawyers, 2)

	count, err := repo.CountByRole(models.UserRoleClient)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository_UsernameExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	mustCreateUser(t, db, "jdoe@test.com", models.UserRoleClient)

	exists, err := repo.UsernameExists("jdoe@test.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists("nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_RefreshTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := mustCreateUser(t, db, "u@test.com", models.UserRoleClient)

	token := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "opaque-token-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateRefreshToken(token))

	found, err := repo.FindRefreshToken("opaque-token-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)

	require.NoError(t, repo.DeleteRefreshToken("opaque-token-1"))
	_, err = repo.FindRefreshToken("opaque-token-1")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Повторное удаление сообщает об отсутствии
	assert.ErrorIs(t, repo.DeleteRefreshToken("opaque-token-1"), ErrTokenNotFound)
}

func TestUserRepository_CleanExpiredRefreshTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := mustCreateUser(t, db, "u@test.com", models.UserRoleClient)

	require.NoError(t, repo.CreateRefreshToken(&models.RefreshToken{
		UserID: user.ID, Token: "fresh", ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.CreateRefreshToken(&models.RefreshToken{
		UserID: user.ID, Token: "stale", ExpiresAt: time.Now().Add(-time.Hour),
	}))

	require.NoError(t, repo.CleanExpiredRefreshTokens())

	_, err := repo.FindRefreshToken("fresh")
	assert.NoError(t, err)
	_, err = repo.FindRefreshToken("stale")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestUserRepository_DeleteRemovesTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := mustCreateUser(t, db, "u@test.com", models.UserRoleClient)
	require.NoError(t, repo.CreateRefreshToken(&models.RefreshToken{
		UserID: user.ID, Token: "t1", ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.Delete(user.ID))

	var tokenCount int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&tokenCount)
	assert.Zero(t, tokenCount)

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
