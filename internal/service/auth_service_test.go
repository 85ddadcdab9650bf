package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/repository"
)

type adminStoreMock struct {
	admins     map[string]*model.Admin
	lastLogins int
	passwords  map[primitive.ObjectID]string
}

func newAdminStoreMock(admins ...*model.Admin) *adminStoreMock {
	m := &adminStoreMock{
		admins:    map[string]*model.Admin{},
		passwords: map[primitive.ObjectID]string{},
	}
	for _, a := range admins {
		m.admins[a.Email] = a
	}
	return m
}

func (m *adminStoreMock) GetByID(_ context.Context, id primitive.ObjectID) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *adminStoreMock) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.admins[email]; ok {
		return a, nil
	}
	return nil, repository.ErrNotFound
}

func (m *adminStoreMock) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	m.passwords[id] = hash
	return nil
}

func (m *adminStoreMock) UpdateLastLogin(_ context.Context, _ primitive.ObjectID, _ time.Time) error {
	m.lastLogins++
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func testAdmin(t *testing.T, password string) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Admin{
		ID:          primitive.NewObjectID(),
		Name:        "Test Admin",
		Email:       "admin@example.com",
		Password:    string(hash),
		Role:        model.RoleAdmin,
		Permissions: []string{model.PermissionCourses},
		IsActive:    true,
	}
}

func TestLoginSuccess(t *testing.T) {
	admin := testAdmin(t, "secret123")
	store := newAdminStoreMock(admin)
	svc := NewAuthService(testConfig(), store, zerolog.Nop())

	got, token, err := svc.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, admin.ID, got.ID)
	assert.Equal(t, 1, store.lastLogins)
	require.NotNil(t, got.LastLogin)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	admin := testAdmin(t, "secret123")
	svc := NewAuthService(testConfig(), newAdminStoreMock(admin), zerolog.Nop())

	_, _, unknownErr := svc.Login(context.Background(), "nobody@example.com", "secret123")
	_, _, wrongErr := svc.Login(context.Background(), "admin@example.com", "wrong-password")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	admin := testAdmin(t, "secret123")
	admin.IsActive = false
	svc := NewAuthService(testConfig(), newAdminStoreMock(admin), zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "admin@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestTokenRoundTrip(t *testing.T) {
	admin := testAdmin(t, "secret123")
	svc := NewAuthService(testConfig(), newAdminStoreMock(admin), zerolog.Nop())

	token, err := svc.GenerateToken(admin.ID)
	require.NoError(t, err)

	id, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Hour
	admin := testAdmin(t, "secret123")
	svc := NewAuthService(cfg, newAdminStoreMock(admin), zerolog.Nop())

	token, err := svc.GenerateToken(admin.ID)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTamperedToken(t *testing.T) {
	admin := testAdmin(t, "secret123")
	svc := NewAuthService(testConfig(), newAdminStoreMock(admin), zerolog.Nop())

	token, err := svc.GenerateToken(admin.ID)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAuthenticateResolvesAdmin(t *testing.T) {
	admin := testAdmin(t, "secret123")
	store := newAdminStoreMock(admin)
	svc := NewAuthService(testConfig(), store, zerolog.Nop())

	token, err := svc.GenerateToken(admin.ID)
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)

	// Deactivation takes effect on the very next request.
	admin.IsActive = false
	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestAuthenticateUnknownAdmin(t *testing.T) {
	admin := testAdmin(t, "secret123")
	svc := NewAuthService(testConfig(), newAdminStoreMock(admin), zerolog.Nop())

	token, err := svc.GenerateToken(primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestChangePassword(t *testing.T) {
	admin := testAdmin(t, "secret123")
	store := newAdminStoreMock(admin)
	svc := NewAuthService(testConfig(), store, zerolog.Nop())

	err := svc.ChangePassword(context.Background(), admin.ID, "wrong", "next-password")
	assert.ErrorIs(t, err, ErrWrongCurrentPasswd)
	assert.Empty(t, store.passwords)

	err = svc.ChangePassword(context.Background(), admin.ID, "secret123", "next-password")
	require.NoError(t, err)

	hash, ok := store.passwords[admin.ID]
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("next-password")))
}
