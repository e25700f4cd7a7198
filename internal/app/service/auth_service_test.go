package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/db"
	"github.com/jwseo/maechuldash-backend/pkg/util"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	hash, err := util.HashPassword("secret123!")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	require.NoError(t, userRepo.Create(&model.User{
		Email:        "analyst@example.com",
		PasswordHash: hash,
		Name:         "분석담당",
		Role:         model.RoleAnalyst,
	}))

	return NewAuthService(userRepo, "test-secret", time.Hour)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthServiceTest(t)

	result, err := svc.Login("analyst@example.com", "secret123!")
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "analyst@example.com", result.User.Email)

	claims, err := util.ValidateToken(result.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, string(model.RoleAnalyst), claims.Role)
}

func TestAuthService_WrongPassword(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Login("analyst@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UnknownUser(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Login("nobody@example.com", "secret123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
