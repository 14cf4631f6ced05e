package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/midwaymobile/storage-site/common/config"
	"github.com/midwaymobile/storage-site/common/logger"
	redisclient "github.com/midwaymobile/storage-site/common/redis"
)

// ErrInvalidCredentials is returned for a failed login attempt
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenStore holds issued admin session tokens. Redis-backed when
// available so sessions survive restarts, in-process otherwise.
type TokenStore interface {
	Put(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService issues and verifies opaque admin bearer tokens
type AuthService struct {
	adminUser    string
	passwordHash []byte
	ttl          time.Duration
	tokens       TokenStore
	log          *logger.Logger
}

// NewAuthService creates the auth service from config. A plaintext
// ADMIN_PASSWORD is hashed once at boot; the hash form is preferred.
func NewAuthService(cfg config.AuthConfig, tokens TokenStore, log *logger.Logger) (*AuthService, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "" {
			return nil, fmt.Errorf("no admin password configured")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hash = generated
	}

	return &AuthService{
		adminUser:    cfg.AdminUser,
		passwordHash: hash,
		ttl:          cfg.TokenTTL,
		tokens:       tokens,
		log:          log,
	}, nil
}

// Login checks the admin credentials and issues a fresh bearer token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUser {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.log.Warn("failed admin login attempt", "username", username)
		return "", ErrInvalidCredentials
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.tokens.Put(ctx, token, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session token: %w", err)
	}

	s.log.Info("admin logged in", "username", username)
	return token, nil
}

// Verify reports whether the bearer token belongs to a live session
func (s *AuthService) Verify(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	ok, err := s.tokens.Exists(ctx, token)
	if err != nil {
		s.log.Error("token verification failed", "error", err)
		return false
	}
	return ok
}

// Logout revokes a session token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps sessions in process memory with lazy expiry
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewMemoryTokenStore creates an empty in-process token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]time.Time),
	}
}

// Put stores a token until its deadline
func (m *MemoryTokenStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token] = time.Now().Add(ttl)
	return nil
}

// Exists reports whether the token is present and not expired
func (m *MemoryTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deadline, ok := m.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(m.tokens, token)
		return false, nil
	}
	return true, nil
}

// Revoke removes a token
func (m *MemoryTokenStore) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, token)
	return nil
}

// RedisTokenStore keeps sessions in Redis with native TTL expiry
type RedisTokenStore struct {
	client *redisclient.Client
}

// NewRedisTokenStore creates a Redis-backed token store
func NewRedisTokenStore(client *redisclient.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Put stores a token with TTL
func (r *RedisTokenStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	return r.client.SetWithExpiry(ctx, sessionKey(token), "1", ttl)
}

// Exists reports whether the token is present
func (r *RedisTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	_, err := r.client.Get(ctx, sessionKey(token))
	if errors.Is(err, redisclient.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Revoke removes a token
func (r *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return r.client.Delete(ctx, sessionKey(token))
}
