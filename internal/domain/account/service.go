// Package account provides self-service registration and login.
package account

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/core/apperror"
	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/user"
	"shopapi/internal/infrastructure/auth"
	"shopapi/internal/infrastructure/storage/postgres"
	"shopapi/pkg/logger"
)

// DefaultRole is assigned to self-registered accounts.
const DefaultRole = "customer"

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// Service provides register and login.
type Service struct {
	tokens *auth.TokenIssuer
}

// NewService creates a new account service.
func NewService(tokens *auth.TokenIssuer) *Service {
	return &Service{tokens: tokens}
}

// RegisterInput carries the self-registration fields.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a signed access token with its expiry.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Register creates a customer account. The email must not be in use.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}

	u := &entity.User{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(strings.ToLower(in.Email)),
		Role:     DefaultRole,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	if taken, err := user.EmailTaken(ctx, uow, u.Email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, apperror.NewDuplicate("user", "email", u.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)

	uow.Users().Create(ctx, u)
	uow.RecordChange(ctx, "user", u, postgres.AuditCreate)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}

	logger.Info(ctx, "account registered", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Login verifies the credentials and issues an access token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperror.NewValidation("email and password are required")
	}

	uow := postgres.MustGetUnitOfWork(ctx)
	u, err := user.FindByEmail(ctx, uow, in.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		logger.Warn(ctx, "failed login attempt", "email", in.Email)
		return nil, apperror.NewUnauthorized("invalid email or password")
	}

	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "login succeeded", "user_id", u.ID)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
