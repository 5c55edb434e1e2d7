package repository

import (
	"context"
	"errors"
	"fmt"
	"speech_coach_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository 基于 gorm 的档案存储，支持 MySQL 与 SQLite
type ProfileRepository struct {
	DB    *gorm.DB
	locks *keyedMutex
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db, locks: newKeyedMutex()}
}

func (r *ProfileRepository) Get(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	return r.find(r.DB.WithContext(ctx), sessionID, false)
}

func (r *ProfileRepository) Put(ctx context.Context, profile *model.UserProfile) error {
	unlock := r.locks.Lock(profile.SessionID)
	defer unlock()

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(profile).Error; err != nil {
			return err
		}
		return r.insertHistory(tx, profile)
	})
}

func (r *ProfileRepository) Update(ctx context.Context, sessionID string, fn func(*model.UserProfile) error) (*model.UserProfile, error) {
	unlock := r.locks.Lock(sessionID)
	defer unlock()

	var updated *model.UserProfile
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := r.find(tx, sessionID, true)
		created := false
		if errors.Is(err, ErrProfileNotFound) {
			p = model.NewUserProfile(sessionID)
			created = true
		} else if err != nil {
			return err
		}

		if err := fn(p); err != nil {
			return err
		}

		now := time.Now()
		p.UpdatedAt = now
		if created {
			p.CreatedAt = now
			err = tx.Omit(clause.Associations).Create(p).Error
		} else {
			err = tx.Omit(clause.Associations).Save(p).Error
		}
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		if err := r.insertHistory(tx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *ProfileRepository) find(db *gorm.DB, sessionID string, forUpdate bool) (*model.UserProfile, error) {
	// SQLite 没有行锁，写入由事务和进程内的键锁串行化
	if forUpdate && r.DB.Dialector.Name() == "mysql" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var p model.UserProfile
	err := db.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("session_id = ?", sessionID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Achievements == nil {
		p.Achievements = model.NewStringSet()
	}
	if p.LanguagesPracticed == nil {
		p.LanguagesPracticed = model.NewStringSet()
	}
	return &p, nil
}

// insertHistory 只插入尚未落库的练习记录，已有记录不会被改写
func (r *ProfileRepository) insertHistory(tx *gorm.DB, p *model.UserProfile) error {
	for i := range p.History {
		rec := &p.History[i]
		if rec.ID != 0 {
			continue
		}
		rec.SessionID = p.SessionID
		if err := tx.Create(rec).Error; err != nil {
			return fmt.Errorf("insert practice record: %w", err)
		}
	}
	return nil
}
