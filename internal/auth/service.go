package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Service issues and revokes login sessions. A session token maps to the
// owning account id, so every authenticated request can be scoped to
// exactly one user.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, userID int, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, sessionValue(userID, createdAt), 0)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotLoggedIn
		}
		return err
	}

	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return err
	}

	return nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.Get(ctx, sessionKey)
		if err := cmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(createdAt) > as.ttl {
			log.Warnf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		cmdDel := as.redisClient.Del(ctx, sessionKey)
		if err := cmdDel.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

// sessionValue packs the owning user id and the session creation time
// into the value stored per token.
func sessionValue(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func parseSessionValue(val string) (userID int, createdAt time.Time, err error) {
	parts := strings.SplitN(val, "|", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("malformed session value: %s", val)
	}

	userID, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session user id: %w", err)
	}

	createdAtUnix, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("malformed session created at: %w", err)
	}

	return userID, time.Unix(createdAtUnix, 0), nil
}
