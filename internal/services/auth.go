package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (uuid.UUID, error)
}

// AccountCreator bootstraps the economy account for a new user.
type AccountCreator interface {
	Save(ctx context.Context, accountID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login. Registration creates the
// user row and its economy account in the same transaction: an account
// exists for every user from the moment the user exists.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	accounts AccountCreator
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService.
func NewAuthService(reader UserReader, writer UserWriter, accounts AccountCreator, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		accounts: accounts,
		jwt:      jwt,
	}
}

// Register creates a new user with a hashed password and a zero-balance
// account. Fails with ErrUserAlreadyExists when the username or email
// is taken.
func (s *AuthService) Register(ctx context.Context, username, password, email string) error {
	existing, err := s.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err == nil && existing != nil {
		return ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "username", username, "error", err)
		return err
	}

	userID, err := s.writer.Save(ctx, username, string(hash), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "error", err)
		return err
	}

	if err := s.accounts.Save(ctx, userID); err != nil {
		logger.Log.Errorw("failed to create account for user", "userID", userID, "error", err)
		return err
	}

	return nil
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "username", username, "error", err)
		return "", err
	}

	return token, nil
}
