package services

import (
	"context"
	"strings"

	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
	"github.com/villastay/villa-api/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read operations for stored users.
type UserReader interface {
	Get(ctx context.Context, filter repositories.Filter[models.LocalUser], tracked bool) (*models.LocalUser, error)
}

// UserWriter defines write operations for stored users.
type UserWriter interface {
	Create(ctx context.Context, user *models.LocalUser) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, role string) (string, error)
}

// AuthService verifies credentials, issues tokens and registers users.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// IsUniqueUsername reports whether no stored user carries the username.
// The comparison is a case-sensitive exact match.
func (svc *AuthService) IsUniqueUsername(ctx context.Context, username string) (bool, error) {
	user, err := svc.reader.Get(ctx, func(u models.LocalUser) bool {
		return u.Username == username
	}, false)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return false, err
	}
	return user == nil, nil
}

// Login verifies the credentials and returns the user together with a
// signed token. A mismatch returns (nil, "", nil); the two fields are the
// sentinel, not an error, and callers must check both. The username lookup
// is case-insensitive.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.LocalUser, string, error) {
	user, err := svc.reader.Get(ctx, func(u models.LocalUser) bool {
		return strings.EqualFold(u.Username, username)
	}, false)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", nil
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Register persists a new user with a hashed password and returns a copy
// with the password field cleared. Uniqueness is not checked here; callers
// confirm it via IsUniqueUsername first.
func (svc *AuthService) Register(ctx context.Context, username, password, name, role string) (*models.LocalUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.LocalUser{
		Username: username,
		Password: string(hashed),
		Name:     name,
		Role:     role,
	}
	if err := svc.writer.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	out := *user
	out.Password = ""
	return &out, nil
}
