// Package redisstore lee las credenciales desde Redis, donde las deja el flujo de login.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTokenKey   = "token"
	DefaultSessionKey = "user"
)

type Config struct {
	URL        string
	TokenKey   string
	SessionKey string
}

type Store struct {
	client     *redis.Client
	tokenKey   string
	sessionKey string
}

// New parsea la URL y verifica la conexión con un PING.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewWithClient(client, cfg.TokenKey, cfg.SessionKey), nil
}

func NewWithClient(client *redis.Client, tokenKey, sessionKey string) *Store {
	if strings.TrimSpace(tokenKey) == "" {
		tokenKey = DefaultTokenKey
	}
	if strings.TrimSpace(sessionKey) == "" {
		sessionKey = DefaultSessionKey
	}
	return &Store{client: client, tokenKey: tokenKey, sessionKey: sessionKey}
}

func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.tokenKey)
}

func (s *Store) Session(ctx context.Context) (string, error) {
	return s.get(ctx, s.sessionKey)
}

// get: clave inexistente => "" sin error.
func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
