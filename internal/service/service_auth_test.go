// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-invoice-maker/internal/config"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	ownerExistsFn        func(ctx context.Context) (bool, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) OwnerExists(ctx context.Context) (bool, error) {
	if m.ownerExistsFn != nil {
		return m.ownerExistsFn(ctx)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSetupKey = "setup-key-123"

func newTestAuthService(repo *mockUserRepository) AuthService {
	cfg := config.App{
		SessionSecret:   "test-session-secret",
		SessionDuration: time.Hour,
		OwnerSetupKey:   testSetupKey,
	}
	return NewAuthService(repo, cfg, logger.Nop())
}

func validSetupInput() OwnerSetupInput {
	return OwnerSetupInput{
		SetupKey:        testSetupKey,
		Username:        "boss",
		Password:        "secret123",
		PasswordConfirm: "secret123",
	}
}

// ─────────────────────────────────────────────
// SetupOwner
// ─────────────────────────────────────────────

func TestSetupOwner_Success(t *testing.T) {
	var created models.User
	repo := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			created = user
			user.UserID = 1
			return user, nil
		},
	}

	owner, err := newTestAuthService(repo).SetupOwner(context.Background(), validSetupInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), owner.UserID)
	assert.Equal(t, models.RoleOwner, created.Role)
	assert.NotEmpty(t, created.CreatedAt)
	// the password is stored only as a bcrypt hash
	assert.NotEqual(t, "secret123", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
}

func TestSetupOwner_RefusedOnceOwnerExists(t *testing.T) {
	createUserCalled := false
	repo := &mockUserRepository{
		ownerExistsFn: func(ctx context.Context) (bool, error) { return true, nil },
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			createUserCalled = true
			return user, nil
		},
	}

	_, err := newTestAuthService(repo).SetupOwner(context.Background(), validSetupInput())

	assert.ErrorIs(t, err, ErrOwnerAlreadyExists)
	assert.False(t, createUserCalled)
}

func TestSetupOwner_WrongSetupKey(t *testing.T) {
	in := validSetupInput()
	in.SetupKey = "wrong"

	_, err := newTestAuthService(&mockUserRepository{}).SetupOwner(context.Background(), in)

	assert.ErrorIs(t, err, ErrWrongSetupKey)
}

func TestSetupOwner_PolicyViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *OwnerSetupInput)
	}{
		{"username too short", func(in *OwnerSetupInput) { in.Username = "ab" }},
		{"password too short", func(in *OwnerSetupInput) {
			in.Password = "12345"
			in.PasswordConfirm = "12345"
		}},
		{"confirmation mismatch", func(in *OwnerSetupInput) { in.PasswordConfirm = "different" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSetupInput()
			tc.mutate(&in)

			_, err := newTestAuthService(&mockUserRepository{}).SetupOwner(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidOwnerInput)
		})
	}
}

func TestSetupOwner_RepositoryErrorIsWrapped(t *testing.T) {
	repoErr := errors.New("db is down")
	repo := &mockUserRepository{
		ownerExistsFn: func(ctx context.Context) (bool, error) { return false, repoErr },
	}

	_, err := newTestAuthService(repo).SetupOwner(context.Background(), validSetupInput())

	assert.ErrorIs(t, err, repoErr)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		UserID:       7,
		Username:     "boss",
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return storedUser(t, "secret123"), nil
		},
	}

	user, err := newTestAuthService(repo).Login(context.Background(), "boss", "secret123")
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.UserID)
}

func TestLogin_AllFailuresAreGeneric(t *testing.T) {
	unknownUserRepo := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{}, errors.New("no user was found")
		},
	}
	knownUserRepo := &mockUserRepository{
		findUserByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return storedUser(t, "secret123"), nil
		},
	}

	cases := []struct {
		name     string
		repo     *mockUserRepository
		username string
		password string
	}{
		{"empty username", knownUserRepo, "", "secret123"},
		{"empty password", knownUserRepo, "boss", ""},
		{"unknown username", unknownUserRepo, "ghost", "secret123"},
		{"wrong password", knownUserRepo, "boss", "wrong-password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestAuthService(tc.repo).Login(context.Background(), tc.username, tc.password)

			// the same sentinel for every failure, nothing leaks
			assert.ErrorIs(t, err, ErrWrongCredentials)
		})
	}
}

// ─────────────────────────────────────────────
// Sessions
// ─────────────────────────────────────────────

func TestCreateSession_ParseSession_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	user := models.User{UserID: 7, Username: "boss", Role: models.RoleOwner}

	token, err := svc.CreateSession(context.Background(), user)
	require.NoError(t, err)

	identity, err := svc.ParseSession(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), identity.UserID)
	assert.Equal(t, "boss", identity.Username)
	assert.Equal(t, models.RoleOwner, identity.Role)
	assert.True(t, identity.IsStaff())
}

func TestParseSession_InvalidToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseSession(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrSessionInvalid)
}
