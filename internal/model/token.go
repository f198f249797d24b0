package model

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(username string) (string, error)
	// ParseAccessToken verifies signature and expiry and returns the payload.
	ParseAccessToken(token string) (TokenPayload, error)
}

// TokenPayload is the decoded content of a verified access token.
type TokenPayload struct {
	Username string
}
