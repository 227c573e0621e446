// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/gympulse/gympulse/internal/config"
	"github.com/gympulse/gympulse/internal/core"
)

// Service authenticates the single configured operator account. The
// credential lives in config as username + argon2id hash; there is no
// user table.
type Service struct {
	cfg config.AuthConfig
	jwt *JWTManager
}

func NewService(cfg config.AuthConfig, jwt *JWTManager) *Service {
	return &Service{cfg: cfg, jwt: jwt}
}

func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (string, error) {
	hash := &s.cfg.AdminPasswordHash

	usernameMatch := subtle.ConstantTimeCompare(
		[]byte(username),
		[]byte(s.cfg.AdminUsername),
	) == 1

	// Always run the hash comparison so unknown usernames cost the same
	// as wrong passwords.
	passwordMatch, err := core.VerifyPasswordTimingSafe(password, hash)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if !usernameMatch || !passwordMatch {
		return "", fmt.Errorf(
			"login: bad credentials: %w",
			core.ErrUnauthorized,
		)
	}

	token, err := s.jwt.CreateAccessToken(username)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	return token, nil
}
