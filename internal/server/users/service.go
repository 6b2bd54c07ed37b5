package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spenttribe/internal/common"
	"spenttribe/internal/server/auth"
	"spenttribe/internal/server/config"
)

// LoginResult is what a successful login hands back to the transport layer:
// a signed token and the identity it embeds.
type LoginResult struct {
	Token string
	User  *User
}

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password and creates the user. A taken username
// surfaces as common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed token. An unknown
// username and a wrong password are indistinguishable to the caller: both
// yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{Token: token, User: user}, nil
}
