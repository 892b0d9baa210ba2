package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

// mockHasher prefixes instead of hashing so tests can assert on the stored value.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(userID uint, username string) (*TokenPair, error)
	VerifyFunc   func(token string) (*TokenClaims, error)
}

func (m *mockTokenService) Generate(userID uint, username string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (m *mockTokenService) Verify(token string) (*TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	return nil, fmt.Errorf("invalid token")
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (l nopLogger) With(...any) logger.Interface  { return l }
func (l nopLogger) Named(string) logger.Interface { return l }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}
