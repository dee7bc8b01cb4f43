package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"listing_backend/internal/auth/transport"
	"listing_backend/platform/apperr"
	"listing_backend/platform/config"
	"listing_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenType = "access"
	bearerTokenType = "Bearer"

	// RoleAgent is the only role issued; the agent API requires it.
	RoleAgent = "agent"

	msgInvalidCredentials = "invalid credentials"
)

// dummyHash keeps unknown-email logins as slow as wrong-password ones.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-the-password"), bcrypt.DefaultCost)
	return h
})

type Service struct {
	cfg config.AuthConfig
	log *logger.Logger
	now func() time.Time
}

func New(cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log, now: time.Now}
}

// Login checks the configured agent account and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (transport.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	agentEmail := s.cfg.GetAgentEmail()
	hash := []byte(s.cfg.GetAgentPasswordHash())

	emailOK := agentEmail != "" && len(hash) > 0 &&
		subtle.ConstantTimeCompare([]byte(email), []byte(agentEmail)) == 1
	if !emailOK {
		hash = dummyHash()
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !emailOK {
		s.log.WithContext(ctx).AuthEvent("login", email, false, msgInvalidCredentials)
		return transport.AuthResponse{}, apperr.Unauthorized(msgInvalidCredentials)
	}

	ttl := s.cfg.GetAccessTokenTTL()
	token, err := s.signJWT(agentEmail, []string{RoleAgent}, ttl)
	if err != nil {
		return transport.AuthResponse{}, apperr.Wrap(apperr.KindInternal, "could not issue token", err)
	}

	s.log.WithContext(ctx).AuthEvent("login", email, true, "")
	return transport.AuthResponse{
		AccessToken: token,
		TokenType:   bearerTokenType,
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

func (s *Service) signJWT(subject string, roles []string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"type":  accessTokenType,
		"roles": roles,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}

// HashPassword produces the bcrypt hash expected in AGENT_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
