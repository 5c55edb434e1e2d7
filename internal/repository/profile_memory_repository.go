package repository

import (
	"context"
	"errors"
	"speech_coach_backend/internal/model"
	"sync"
	"time"
)

type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*model.UserProfile
	locks    *keyedMutex
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: make(map[string]*model.UserProfile),
		locks:    newKeyedMutex(),
	}
}

func (r *MemoryProfileRepository) Get(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[sessionID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p.Clone(), nil
}

func (r *MemoryProfileRepository) Put(ctx context.Context, profile *model.UserProfile) error {
	unlock := r.locks.Lock(profile.SessionID)
	defer unlock()

	r.store(profile)
	return nil
}

func (r *MemoryProfileRepository) Update(ctx context.Context, sessionID string, fn func(*model.UserProfile) error) (*model.UserProfile, error) {
	unlock := r.locks.Lock(sessionID)
	defer unlock()

	p, err := r.Get(ctx, sessionID)
	if errors.Is(err, ErrProfileNotFound) {
		p = model.NewUserProfile(sessionID)
		p.CreatedAt = time.Now()
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now()

	r.store(p)
	return p.Clone(), nil
}

func (r *MemoryProfileRepository) store(p *model.UserProfile) {
	r.mu.Lock()
	r.profiles[p.SessionID] = p.Clone()
	r.mu.Unlock()
}

// Len 当前档案数量
func (r *MemoryProfileRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
