// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The session secret and owner setup key are required: without them staff
// sessions cannot be signed and the bootstrap route cannot be gated.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return ErrMissingSessionSecret
	}

	if cfg.App.OwnerSetupKey == "" {
		return ErrMissingOwnerSetupKey
	}

	if cfg.Storage.DBFile == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
