package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-invoice-maker/internal/config"
	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/internal/store"
	"github.com/MKhiriev/go-invoice-maker/internal/utils"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// Account policy enforced by the owner setup form.
const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// authService is the concrete implementation of AuthService.
// It handles the one-time owner bootstrap, credential verification with
// bcrypt, and signed session token lifecycle, using a UserRepository for
// persistence.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// setupKey is the operator-configured shared secret gating the one-time
	// owner setup route.
	setupKey string

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionDuration controls how long an issued session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		setupKey:        cfg.OwnerSetupKey,
		sessionSignKey:  cfg.SessionSecret,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// OwnerExists reports whether the bootstrap owner account exists. The check
// always hits the repository; the result is never cached so that setup shuts
// itself off immediately after the first successful owner creation.
func (a *authService) OwnerExists(ctx context.Context) (bool, error) {
	return a.userRepository.OwnerExists(ctx)
}

// SetupOwner performs the one-time owner creation.
//
// It refuses with ErrOwnerAlreadyExists once any owner account exists,
// verifies the shared setup key with a constant-time comparison, enforces
// the account policy (username at least 3 characters, password at least 6,
// matching confirmation), and stores the password as a bcrypt hash.
//
// Returns the persisted owner or:
//   - ErrOwnerAlreadyExists if the setup window has closed.
//   - ErrWrongSetupKey on a key mismatch, with no further detail.
//   - ErrInvalidOwnerInput on a policy violation.
func (a *authService) SetupOwner(ctx context.Context, in OwnerSetupInput) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.OwnerExists(ctx)
	if err != nil {
		log.Err(err).Msg("owner existence check failed")
		return models.User{}, fmt.Errorf("owner existence check failed: %w", err)
	}
	if exists {
		return models.User{}, ErrOwnerAlreadyExists
	}

	if subtle.ConstantTimeCompare([]byte(in.SetupKey), []byte(a.setupKey)) != 1 {
		log.Error().Msg("owner setup attempted with wrong setup key")
		return models.User{}, ErrWrongSetupKey
	}

	if len(in.Username) < minUsernameLen || len(in.Password) < minPasswordLen || in.Password != in.PasswordConfirm {
		return models.User{}, ErrInvalidOwnerInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	owner := models.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         models.RoleOwner,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	createdOwner, err := a.userRepository.CreateUser(ctx, owner)
	if err != nil {
		log.Err(err).Str("username", in.Username).Msg("owner creation ended with error")
		return models.User{}, fmt.Errorf("owner creation ended with error: %w", err)
	}

	return createdOwner, nil
}

// Login authenticates an existing staff user.
//
// The username is looked up case-sensitively and the password is checked
// against the stored bcrypt hash. Every failure (empty input, unknown
// username, wrong password) is normalised to ErrWrongCredentials so that
// nothing about existing accounts leaks.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrWrongCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, ErrWrongCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().Int64("id", foundUser.UserID).Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateSession issues a signed session token recording the user's id,
// username, and role. The token is signed with the configured session secret
// and expires after the configured session duration.
func (a *authService) CreateSession(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateSessionToken(user, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return "", fmt.Errorf("session token creation failed: %w", err)
	}

	return token, nil
}

// ParseSession validates a raw session token string and restores the staff
// identity from its claims. Any validation failure (expired, malformed, bad
// signature) is normalised to ErrSessionInvalid so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey)
	if err != nil {
		return models.Identity{}, ErrSessionInvalid
	}

	return identity, nil
}
