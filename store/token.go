package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	redisLogPrefix     = "redis"
	refreshTokenPrefix = "refresh:"
	userTokensPrefix   = "refresh:user:"
)

var ErrRefreshTokenInvalid = fmt.Errorf("refresh token is invalid or expired")

// TokenStore - refresh token bookkeeping
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeRefreshToken(ctx context.Context, token string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeUserTokens(ctx context.Context, userID string) error
	Ping(ctx context.Context) error
}

type redisTokenStore struct {
	client redis.UniversalClient
}

// NewTokenStore - return a redis backed token store
func NewTokenStore(client redis.UniversalClient) TokenStore {
	return &redisTokenStore{client: client}
}

func (r *redisTokenStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisTokenStore) SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, refreshTokenPrefix+token, userID, ttl)
		pipe.SAdd(ctx, userTokensPrefix+userID, token)
		pipe.Expire(ctx, userTokensPrefix+userID, ttl)
		return nil
	})
	return err
}

// ConsumeRefreshToken returns the owner of a refresh token and invalidates it.
// A token can only be consumed once.
func (r *redisTokenStore) ConsumeRefreshToken(ctx context.Context, token string) (string, error) {
	var get *redis.StringCmd
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, refreshTokenPrefix+token)
		del = pipe.Del(ctx, refreshTokenPrefix+token)
		return nil
	})
	if err != nil && err != redis.Nil {
		return "", err
	}

	userID, err := get.Result()
	if err == redis.Nil || del.Val() == 0 {
		return "", ErrRefreshTokenInvalid
	}
	if err != nil {
		return "", err
	}

	if err := r.client.SRem(ctx, userTokensPrefix+userID, token).Err(); err != nil {
		log.WithField("prefix", redisLogPrefix).WithError(err).Warn("fail to untrack refresh token")
	}

	return userID, nil
}

func (r *redisTokenStore) RevokeRefreshToken(ctx context.Context, token string) error {
	_, err := r.ConsumeRefreshToken(ctx, token)
	if err == ErrRefreshTokenInvalid {
		return nil
	}
	return err
}

// RevokeUserTokens drops every refresh token issued to the user
func (r *redisTokenStore) RevokeUserTokens(ctx context.Context, userID string) error {
	tokens, err := r.client.SMembers(ctx, userTokensPrefix+userID).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, t := range tokens {
		keys = append(keys, refreshTokenPrefix+t)
	}
	keys = append(keys, userTokensPrefix+userID)

	log.WithField("prefix", redisLogPrefix).WithField("user_id", userID).
		Infof("revoking %d refresh tokens", len(tokens))

	return r.client.Del(ctx, keys...).Err()
}
