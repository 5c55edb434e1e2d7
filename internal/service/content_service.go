package service

import (
	"context"
	"math/rand"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/util"
	"sync"
)

type PromptResponse struct {
	Prompt   string         `json:"prompt"`
	Language model.Language `json:"language"`
}

type VocabularyResponse struct {
	Language     model.Language          `json:"language"`
	Vocabulary   []model.VocabularyEntry `json:"vocabulary"`
	LearnedWords []string                `json:"learnedWords"`
}

// ContentService 提供练习题目、每日词汇和成就目录等静态内容
type ContentService struct {
	Progression *ProgressionService

	mu  sync.Mutex
	rng *rand.Rand
}

func NewContentService(progression *ProgressionService, src rand.Source) *ContentService {
	return &ContentService{Progression: progression, rng: rand.New(src)}
}

// RandomPrompt 未知语言回退到英语
func (s *ContentService) RandomPrompt(language string) PromptResponse {
	lang := model.ParseLanguage(language)
	prompts := model.PracticePrompts[lang]

	s.mu.Lock()
	i := s.rng.Intn(len(prompts))
	s.mu.Unlock()

	return PromptResponse{Prompt: prompts[i], Language: lang}
}

func (s *ContentService) Vocabulary(ctx context.Context, sessionID, language string) (*VocabularyResponse, error) {
	lang := model.ParseLanguage(language)

	words := model.VocabularyLists[lang]
	if len(words) > util.VocabularyPerDay {
		words = words[:util.VocabularyPerDay]
	}

	resp := &VocabularyResponse{
		Language:     lang,
		Vocabulary:   words,
		LearnedWords: []string{},
	}
	if sessionID == "" {
		return resp, nil
	}

	p, err := s.Progression.Profile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp.LearnedWords = p.LearnedWords.Items()
	return resp, nil
}

func (s *ContentService) Achievements() []model.AchievementDefinition {
	return model.AchievementCatalog
}
