package service

import (
	"context"
	"errors"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/repository"
	"speech_coach_backend/internal/util"
	"strings"
	"time"
)

// ProgressionService 将进度状态机应用到存储中的档案，每次更新在存储的键锁内完成
type ProgressionService struct {
	Store repository.ProfileStore
	Now   func() time.Time
}

func NewProgressionService(store repository.ProfileStore) *ProgressionService {
	return &ProgressionService{
		Store: store,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// AchievementStatus 成就目录项及当前用户是否已解锁
type AchievementStatus struct {
	model.AchievementDefinition
	Unlocked bool `json:"unlocked"`
}

// ProgressReport 进度页数据
type ProgressReport struct {
	Profile      *model.UserProfile  `json:"profile"`
	AverageScore float64             `json:"averageScore"`
	NextLevelXP  int                 `json:"nextLevelXp"`
	Achievements []AchievementStatus `json:"achievements"`
}

func (s *ProgressionService) RecordPractice(ctx context.Context, sessionID string, result model.AnalysisResult, language model.Language, prompt, transcript string) (PracticeOutcome, error) {
	var outcome PracticeOutcome
	_, err := s.Store.Update(ctx, sessionID, func(p *model.UserProfile) error {
		outcome = ApplyPracticeOutcome(p, result, language, prompt, transcript, s.Now())
		return nil
	})
	if err != nil {
		return PracticeOutcome{}, err
	}
	return outcome, nil
}

func (s *ProgressionService) LearnWord(ctx context.Context, sessionID, word string) (WordOutcome, error) {
	if strings.TrimSpace(word) == "" {
		return WordOutcome{AchievementsUnlocked: []model.AchievementID{}}, util.ErrEmptyWord
	}

	var outcome WordOutcome
	_, err := s.Store.Update(ctx, sessionID, func(p *model.UserProfile) error {
		outcome = LearnWord(p, word)
		return nil
	})
	if err != nil {
		return WordOutcome{}, err
	}
	return outcome, nil
}

// Profile 返回会话的档案；尚未练习过的会话得到一份未保存的初始档案
func (s *ProgressionService) Profile(ctx context.Context, sessionID string) (*model.UserProfile, error) {
	p, err := s.Store.Get(ctx, sessionID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return model.NewUserProfile(sessionID), nil
	}
	return p, err
}

func (s *ProgressionService) Progress(ctx context.Context, sessionID string) (*ProgressReport, error) {
	p, err := s.Profile(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := &ProgressReport{
		Profile:      p,
		AverageScore: roundScore(p.AverageScore()),
		NextLevelXP:  p.Level * util.XPPerLevel,
		Achievements: make([]AchievementStatus, 0, len(model.AchievementCatalog)),
	}
	for _, a := range model.AchievementCatalog {
		report.Achievements = append(report.Achievements, AchievementStatus{
			AchievementDefinition: a,
			Unlocked:              p.Achievements.Contains(string(a.ID)),
		})
	}
	return report, nil
}
