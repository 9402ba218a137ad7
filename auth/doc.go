// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and access token utilities.

# Passwords

Passwords are hashed with bcrypt at the default cost:

	hash, err := auth.HashPassword("pw1")
	ok := auth.VerifyPassword("pw1", hash)

# Access Tokens

Tokens are HS256 JWTs signed with the configured secret. They are
self-contained; there is no server-side session store:

	signer := auth.NewSigner(cfg.SigningSecret)
	token, err := signer.IssueToken(auth.Claims{UserID: 7, IsAdmin: true}, 24*time.Hour)
	claims, err := signer.VerifyToken(token)

Claims carry user_id, username and is_admin plus the registered exp, iat
and jti (a random UUID). VerifyToken rejects tampered, expired, unsigned
or wrongly-signed tokens with the single error ErrInvalidToken so callers
can treat them uniformly as anonymous.
*/
package auth
