package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"currency-wallet-web/config"
	"currency-wallet-web/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore keeps the backend token server-side, keyed by an opaque
// session id in the cookie. Logging out in one place invalidates the
// session everywhere, which the signed cookie cannot do.
type RedisStore struct {
	client *goredis.Client
	name   string
	ttl    time.Duration
	secure bool
	prefix string
}

var _ ports.SessionStore = (*RedisStore)(nil)

// NewRedisClient creates a Redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *goredis.Client, cfg config.SessionConfig) *RedisStore {
	return &RedisStore{
		client: client,
		name:   cfg.CookieName,
		ttl:    cfg.TTL,
		secure: cfg.SecureCookies,
		prefix: "session:",
	}
}

func (s *RedisStore) Issue(ctx context.Context, w http.ResponseWriter, token string) error {
	id := uuid.NewString()
	if err := s.client.Set(ctx, s.prefix+id, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *RedisStore) Token(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", nil
	}

	token, err := s.client.Get(ctx, s.prefix+cookie.Value).Result()
	if err == goredis.Nil {
		// Unknown or expired session id reads as anonymous.
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(s.name); err == nil && cookie.Value != "" {
		if err := s.client.Del(ctx, s.prefix+cookie.Value).Err(); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
