package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"speech_coach_backend/internal/model"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	profileKeyPrefix = "speech:profile:"
	maxWatchRetries  = 10
)

// RedisProfileRepository 将档案以 JSON 形式存放在 Redis，更新走 WATCH/MULTI 乐观事务
type RedisProfileRepository struct {
	client *redis.Client
	ttl    time.Duration
	locks  *keyedMutex
}

// NewRedisProfileRepository ttl 为 0 表示不过期
func NewRedisProfileRepository(client *redis.Client, ttl time.Duration) *RedisProfileRepository {
	return &RedisProfileRepository{client: client, ttl: ttl, locks: newKeyedMutex()}
}

func profileKey(sessionID string) string {
	return profileKeyPrefix + sessionID
}

func (r *RedisProfileRepository) Get(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	data, err := r.client.Get(ctx, profileKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeProfile(sessionID, data)
}

func (r *RedisProfileRepository) Put(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return r.client.Set(ctx, profileKey(profile.SessionID), data, r.ttl).Err()
}

func (r *RedisProfileRepository) Update(ctx context.Context, sessionID string, fn func(*model.UserProfile) error) (*model.UserProfile, error) {
	unlock := r.locks.Lock(sessionID)
	defer unlock()

	key := profileKey(sessionID)
	var updated *model.UserProfile

	txf := func(tx *redis.Tx) error {
		var p *model.UserProfile
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			p = model.NewUserProfile(sessionID)
			p.CreatedAt = time.Now()
		case err != nil:
			return err
		default:
			if p, err = decodeProfile(sessionID, data); err != nil {
				return err
			}
		}

		if err := fn(p); err != nil {
			return err
		}
		p.UpdatedAt = time.Now()

		encoded, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, r.ttl)
			return nil
		})
		if err == nil {
			updated = p
		}
		return err
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// 其他进程在此期间改写了档案，重试
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("update profile %s: too many concurrent writers", sessionID)
}

func decodeProfile(sessionID string, data []byte) (*model.UserProfile, error) {
	p := model.NewUserProfile(sessionID)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.SessionID = sessionID
	for i := range p.History {
		p.History[i].SessionID = sessionID
	}
	return p, nil
}

// ScanSessionIDs 遍历所有档案键，fn 返回错误时停止
func (r *RedisProfileRepository) ScanSessionIDs(ctx context.Context, fn func(sessionID string) error) error {
	iter := r.client.Scan(ctx, 0, profileKeyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		if err := fn(strings.TrimPrefix(iter.Val(), profileKeyPrefix)); err != nil {
			return err
		}
	}
	return iter.Err()
}
