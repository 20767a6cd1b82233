package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed login attempts per (email, client IP) using a
// Redis counter with a sliding expiry. Raw addresses are never stored.
type LoginLimiter struct {
	client   *redis.Client
	maxFails int64
	window   time.Duration
	blockFor time.Duration
}

// NewLoginLimiter constructs a LoginLimiter.
func NewLoginLimiter(client *redis.Client, maxFails int, window, blockFor time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxFails: int64(maxFails), window: window, blockFor: blockFor}
}

func limiterKey(prefix, email, ip string) string {
	sum := sha256.Sum256([]byte(email + "|" + ip))
	return prefix + hex.EncodeToString(sum[:])
}

// Allow reports whether a login attempt may proceed. Redis being unreachable
// fails open; the limiter is a hardening layer, not the credential check.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) bool {
	blocked, err := l.client.Exists(ctx, limiterKey("login_block:", email, ip)).Result()
	if err != nil {
		return true
	}
	return blocked == 0
}

// Failure records a failed attempt and places a temporary block once the
// threshold is reached.
func (l *LoginLimiter) Failure(ctx context.Context, email, ip string) error {
	key := limiterKey("login_fail:", email, ip)
	fails, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if fails == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return err
		}
	}
	if fails >= l.maxFails {
		return l.client.Set(ctx, limiterKey("login_block:", email, ip), 1, l.blockFor).Err()
	}
	return nil
}

// Success resets counters after a successful login.
func (l *LoginLimiter) Success(ctx context.Context, email, ip string) error {
	return l.client.Del(ctx,
		limiterKey("login_fail:", email, ip),
		limiterKey("login_block:", email, ip),
	).Err()
}
