// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// viewTokenBytes is the entropy of a public view token. 18 random bytes
// encode to a 24-character URL-safe string, making token guessing infeasible.
const viewTokenBytes = 18

// NewViewToken returns a fresh unguessable URL-safe token for the public
// invoice link. The token is read from the operating system's CSPRNG; a
// general-purpose pseudo-random source must never be substituted here, since
// the token is the sole authorization credential for public access.
func NewViewToken() (string, error) {
	b := make([]byte, viewTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("error reading random bytes for view token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
