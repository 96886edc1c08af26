package service

import (
	"testing"

	"go-umkm-pos/internal/model"
	"go-umkm-pos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCashier(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	u := &model.User{
		Email:    "kasir@example.com",
		FullName: "Kasir Satu",
		Role:     model.RoleCashier,
		IsActive: true,
	}
	require.NoError(t, u.SetPassword("rahasia1"))
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestLoginAndValidateToken(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepo(db))
	seedCashier(t, db)

	resp, err := auth.Login("kasir@example.com", "rahasia1")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleCashier, resp.User.Role)

	validated, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "kasir@example.com", validated.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepo(db))
	seedCashier(t, db)

	_, err := auth.Login("kasir@example.com", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Login kedua merotasi token version; token pertama mati.
func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepo(db))
	seedCashier(t, db)

	first, err := auth.Login("kasir@example.com", "rahasia1")
	require.NoError(t, err)

	_, err = auth.Login("kasir@example.com", "rahasia1")
	require.NoError(t, err)

	_, err = auth.ValidateToken(first.Token)
	assert.Error(t, err)
}

func TestLoginInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(repository.NewUserRepo(db))
	u := seedCashier(t, db)

	require.NoError(t, db.Model(u).Update("is_active", false).Error)

	_, err := auth.Login("kasir@example.com", "rahasia1")
	assert.ErrorIs(t, err, ErrUserInactive)
}
