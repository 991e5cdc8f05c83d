package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-invoice-maker/internal/logger"
	"github.com/MKhiriev/go-invoice-maker/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles staff account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new staff account and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// Error handling:
//   - SQLite unique-constraint violation → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error getting inserted user id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.UserID = userID
	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches exactly
// (case-sensitive lookup).
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other scan or driver error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsername(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// OwnerExists reports whether any owner account exists. The check runs
// against the database on every call: the one-time setup gate must observe a
// freshly created owner immediately, even within the same process lifetime.
func (r *userRepository) OwnerExists(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOwnerExists()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.OwnerExists").Msg("error building query")
		return false, fmt.Errorf("error building sql query: %w", err)
	}

	var one int
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		log.Err(err).Str("func", "*userRepository.OwnerExists").Msg("error: scanning error")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}
