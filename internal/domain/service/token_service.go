package service

// TokenClaims is the authenticated identity carried by an access token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService defines the contract for issuing and validating access
// tokens. This is demo-grade, single-token authentication: there is no
// refresh flow.
type TokenService interface {
	// Generate creates a signed access token for the user.
	Generate(userID, role string) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (*TokenClaims, error)
}
