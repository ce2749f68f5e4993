package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// UserID resolves a session token to the owning account id.
// Expired or unknown tokens yield ErrNotLoggedIn.
func (sc *SessionChecker) UserID(ctx context.Context, token string) (int, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := sc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}

	userID, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return 0, err
	}

	if time.Since(createdAt) > sc.ttl {
		return 0, ErrNotLoggedIn
	}

	return userID, nil
}
