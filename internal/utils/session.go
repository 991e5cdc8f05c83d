package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-invoice-maker/models"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a signed session cookie.
// It extends the registered JWT claims with the staff username and role so
// that protected handlers can build a [models.Identity] without a database
// round trip.
type SessionClaims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     string `json:"role"`
}

// GenerateSessionToken creates a signed HMAC-SHA256 session token for the
// given user.
//
// The token includes the following claims:
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//   - username, role:  the identity fields restored on every request
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateSessionToken(user models.User, sessionDuration time.Duration, signKey string) (string, error) {
	if sessionDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: user.Username,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// restores the staff identity from its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Returns the restored [models.Identity] or an error if validation fails,
// claims are missing, or the subject cannot be parsed.
func ValidateAndParseSessionToken(tokenString, signKey string) (models.Identity, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	userIDStr, err := claims.GetSubject()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred during getting subject from session token: %w", err)
	}
	if userIDStr == "" {
		return models.Identity{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return models.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
