package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/domain/repositories"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
)

// AuthService registers accounts and issues session tokens.
type AuthService struct {
	accounts   repositories.AccountRepository
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
	logger     *logging.ChanneledLogger
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts repositories.AccountRepository,
	jwtSecret string,
	jwtExpiry time.Duration,
	bcryptCost int,
	logger *logging.ChanneledLogger,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates an account with its own org and returns a signed
// token for the new session.
func (s *AuthService) Register(ctx context.Context, email, password string) (*user.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("account already exists for %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &user.Account{
		ID:           security.GenerateULID(),
		OrgID:        security.GenerateULID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := security.GenerateAccountToken(account, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Auth().Info("Registered account", "accountId", account.ID)
	return account, token, nil
}

// Login verifies credentials and returns a signed token. Missing
// accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.Account, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Auth().Warn("Failed login attempt", "email", email)
		return nil, "", user.ErrInvalidCredentials
	}

	token, err := security.GenerateAccountToken(account, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Auth().Info("Logged in", "accountId", account.ID)
	return account, token, nil
}
