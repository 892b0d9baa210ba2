package usecases

// PasswordHasher abstracts the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the identity carried by a verified token.
type TokenClaims struct {
	UserID    uint
	Username  string
	TokenType string
}

// TokenService abstracts token issuance and verification.
type TokenService interface {
	Generate(userID uint, username string) (*TokenPair, error)
	Verify(token string) (*TokenClaims, error)
}
