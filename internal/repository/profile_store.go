package repository

import (
	"context"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/util"
	"sync"
)

// ErrProfileNotFound Get 找不到档案时返回
var ErrProfileNotFound = util.ErrProfileNotFound

// ProfileStore 按会话ID存取学习档案。
// 修改档案只能走 Update：读取（不存在则新建）、执行 fn、写回，同一个键串行执行；
// fn 返回错误时不写入任何内容。
type ProfileStore interface {
	Get(ctx context.Context, sessionID string) (*model.UserProfile, error)
	Put(ctx context.Context, profile *model.UserProfile) error
	Update(ctx context.Context, sessionID string, fn func(*model.UserProfile) error) (*model.UserProfile, error)
}

// keyedMutex 每个键一把锁，无人持有时回收
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedEntry)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
