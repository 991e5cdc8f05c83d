package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSessionSecret indicates that no session signing secret was
	// provided by any configuration source.
	ErrMissingSessionSecret = errors.New("missing session secret")
	// ErrMissingOwnerSetupKey indicates that no one-time owner setup key was
	// provided by any configuration source.
	ErrMissingOwnerSetupKey = errors.New("missing owner setup key")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
