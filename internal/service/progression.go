package service

import (
	"math"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/util"
	"strings"
	"time"
)

// PracticeOutcome 一次练习带来的变化，供前端展示
type PracticeOutcome struct {
	LevelUp              bool                  `json:"levelUp"`
	NewLevel             int                   `json:"newLevel"`
	XPGained             int                   `json:"xpGained"`
	TotalXP              int                   `json:"totalXp"`
	Streak               int                   `json:"streak"`
	AchievementsUnlocked []model.AchievementID `json:"achievementsUnlocked"`
}

type WordOutcome struct {
	Added                bool                  `json:"added"`
	Word                 string                `json:"word"`
	XPGained             int                   `json:"xpGained"`
	TotalXP              int                   `json:"totalXp"`
	LevelUp              bool                  `json:"levelUp"`
	NewLevel             int                   `json:"newLevel"`
	AchievementsUnlocked []model.AchievementID `json:"achievementsUnlocked"`
}

func levelForXP(xp int) int {
	return xp/util.XPPerLevel + 1
}

// calendarDate 去掉时分秒，保留 t 自身时区的日期。
// 存储的日期是 UTC 零点，传入前需先调用 UTC()
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// unlock 成就只发放一次奖励，返回是否新解锁
func unlock(p *model.UserProfile, id model.AchievementID, unlocked *[]model.AchievementID) bool {
	if p.Achievements == nil {
		p.Achievements = model.NewStringSet()
	}
	if !p.Achievements.Add(string(id)) {
		return false
	}
	p.XP += util.AchievementBonus
	*unlocked = append(*unlocked, id)
	return true
}

// ApplyPracticeOutcome 将一次分析过的练习计入档案。
// 等级最后计算，包含本次所有经验变化（含成就奖励）
func ApplyPracticeOutcome(p *model.UserProfile, result model.AnalysisResult, language model.Language, prompt, transcript string, now time.Time) PracticeOutcome {
	levelBefore := p.Level
	unlocked := []model.AchievementID{}

	p.SessionCount++
	switch p.SessionCount {
	case 1:
		unlock(p, model.AchievementFirstPractice, &unlocked)
	case 5:
		unlock(p, model.AchievementFivePractices, &unlocked)
	}

	score := clampScore(result.Score)
	p.TotalScore += score
	if score >= util.PerfectScoreFloor {
		unlock(p, model.AchievementPerfectScore, &unlocked)
	}

	xpGained := int(math.Floor(score*10 + 1e-9))
	p.XP += xpGained

	today := calendarDate(now)
	switch {
	case p.LastPracticeDate == nil:
		p.Streak = 1
	case calendarDate(p.LastPracticeDate.UTC()).Equal(today.AddDate(0, 0, -1)):
		p.Streak++
		if p.Streak == 3 {
			unlock(p, model.AchievementThreeDayStreak, &unlocked)
		}
	case calendarDate(p.LastPracticeDate.UTC()).Equal(today):
		// 同一天：连续天数不变
	default:
		p.Streak = 1
	}
	p.LastPracticeDate = &today

	if p.LanguagesPracticed == nil {
		p.LanguagesPracticed = model.NewStringSet()
	}
	if p.LanguagesPracticed.Add(language.String()) && p.LanguagesPracticed.Len() >= 2 {
		unlock(p, model.AchievementMultilingual, &unlocked)
	}

	p.History = append(p.History, model.PracticeRecord{
		SessionID:   p.SessionID,
		PracticedAt: now,
		Language:    language,
		Prompt:      prompt,
		Transcript:  transcript,
		Score:       score,
		Feedback:    result.Message,
		XPGained:    xpGained,
	})

	p.Level = levelForXP(p.XP)

	return PracticeOutcome{
		LevelUp:              p.Level > levelBefore,
		NewLevel:             p.Level,
		XPGained:             xpGained,
		TotalXP:              p.XP,
		Streak:               p.Streak,
		AchievementsUnlocked: unlocked,
	}
}

// LearnWord 记录已学单词，重复或空白单词不做处理
func LearnWord(p *model.UserProfile, word string) WordOutcome {
	word = strings.TrimSpace(word)
	out := WordOutcome{
		Word:                 word,
		TotalXP:              p.XP,
		NewLevel:             p.Level,
		AchievementsUnlocked: []model.AchievementID{},
	}
	if word == "" || !p.LearnedWords.Add(word) {
		return out
	}

	levelBefore := p.Level
	p.XP += util.WordLearnedXP
	if p.LearnedWords.Len() >= 10 {
		unlock(p, model.AchievementVocabularyMaster, &out.AchievementsUnlocked)
	}
	p.Level = levelForXP(p.XP)

	out.Added = true
	out.XPGained = util.WordLearnedXP
	out.TotalXP = p.XP
	out.NewLevel = p.Level
	out.LevelUp = p.Level > levelBefore
	return out
}
