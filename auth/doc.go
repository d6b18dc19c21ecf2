// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides bearer-token authentication utilities.

# Tokens

Tokens are HS256 JWTs whose subject is the numeric user id:

	token, err := auth.IssueToken(userID, secret, 30*24*time.Hour)
	userID, err := auth.ParseToken(token, secret)

Expired tokens, tokens signed with another secret or algorithm, and tokens
without an expiry fail with ErrInvalidToken.

# Requests

BearerToken reads the Authorization header:

	Authorization: Bearer <token>

A missing header is ErrMissingToken; anything else malformed is
ErrInvalidToken.

# Identity

The auth middleware stores the caller on the request context:

	ctx = auth.WithIdentity(ctx, auth.Identity{UserID: 7, Nickname: "kim"})
	id, ok := auth.FromContext(ctx)

Handlers read it once and pass the user id on explicitly.
*/
package auth
