package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUserID = "user_id"
)

// AuthScheme is the expected Authorization header scheme, compared
// case-insensitively.
const AuthScheme = "Token"

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// TokenKeyBytes is the number of random bytes behind a token key; the key
// itself is the hex encoding (twice as many characters).
const TokenKeyBytes = 20
