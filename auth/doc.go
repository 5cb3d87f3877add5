// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key derivation and validation.

Administrator identity is established upstream by the platform's auth
gateway; this package only covers direct access to the admin endpoints with
a shared-secret HMAC scheme:

	key := auth.GenerateAdminKey(adminID, cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(adminID, presentedKey, cfg.AdminKeySalt)

Keys are deterministic HMAC-SHA256 digests of the admin id, URL-safe base64
encoded, compared in constant time. Nothing is stored; rotating
ADMIN_KEY_SALT invalidates every key at once.

Voter identity carries no key at all - the gateway authenticates voters and
forwards the id in the X-Voter-Id header.
*/
package auth
