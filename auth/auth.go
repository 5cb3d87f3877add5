// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey derives the shared admin key for an administrator id.
// This is deterministic and verifiable, so keys never need to be stored.
func GenerateAdminKey(adminID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(adminID))
	sum := h.Sum(nil)
	return base64.RawURLEncoding.EncodeToString(sum)
}

// ValidateAdminKey checks the provided admin key against the derived one
// in constant time.
func ValidateAdminKey(adminID, adminKey, salt string) error {
	expected := GenerateAdminKey(adminID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}
