package conversation

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"AquaBackend/pkg/nlp"
	redisPkg "AquaBackend/pkg/redis"
)

const redisKeyPrefix = "assistant:conversation:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// redisStore keeps conversations in Redis with a native TTL, so no sweeper
// is needed and multiple instances share the same state. Errors degrade to
// a fresh IDLE context: losing a pending confirmation is always safe, the
// user just restates the request.
type redisStore struct {
	redis redisPkg.IRedis
	ttl   time.Duration
	log   *logrus.Logger
}

func NewRedisStore(redis redisPkg.IRedis, log *logrus.Logger, ttl time.Duration) IConversationStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisStore{redis: redis, ttl: ttl, log: log}
}

func (s *redisStore) Get(ctx context.Context, userID string) Context {
	raw, err := s.redis.Get(ctx, redisKeyPrefix+userID)
	if err != nil {
		if !errors.Is(err, redisPkg.ErrNotFound) && s.log != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Failed to read conversation, starting fresh")
		}
		return Context{State: StateIdle, LastTouched: time.Now()}
	}

	var entry Context
	if err := json.UnmarshalFromString(raw, &entry); err != nil {
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Corrupt conversation entry, starting fresh")
		}
		return Context{State: StateIdle, LastTouched: time.Now()}
	}

	// Reads refresh the TTL the same way the memory store bumps
	// LastTouched.
	_ = s.redis.Expire(ctx, redisKeyPrefix+userID, s.ttl)

	entry.LastTouched = time.Now()
	return entry
}

func (s *redisStore) Await(ctx context.Context, userID string, pending *nlp.PendingAction) {
	entry := Context{
		State:       StateAwaitingConfirmation,
		Pending:     pending,
		LastTouched: time.Now(),
	}

	raw, err := json.MarshalToString(entry)
	if err != nil {
		if s.log != nil {
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to encode conversation entry")
		}
		return
	}

	if err := s.redis.Set(ctx, redisKeyPrefix+userID, raw, s.ttl); err != nil && s.log != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to store conversation entry")
	}
}

func (s *redisStore) Clear(ctx context.Context, userID string) {
	if err := s.redis.Delete(ctx, redisKeyPrefix+userID); err != nil && s.log != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Failed to clear conversation entry")
	}
}

func (s *redisStore) Shutdown() {}
