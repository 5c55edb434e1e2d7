package service

import (
	"fmt"
	"math"
	"speech_coach_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC).AddDate(0, 0, n)
}

func practice(p *model.UserProfile, score float64, lang model.Language, now time.Time) PracticeOutcome {
	return ApplyPracticeOutcome(p, model.AnalysisResult{Score: score, Message: "ok"}, lang, "prompt", "transcript", now)
}

func TestApplyPracticeOutcome_FirstPerfectSession(t *testing.T) {
	p := model.NewUserProfile("s")

	out := practice(p, 9.7, model.English, day(0))

	assert.Equal(t, 97, out.XPGained)
	assert.Equal(t, 197, out.TotalXP)
	assert.Equal(t, 197, p.XP)
	assert.True(t, out.LevelUp)
	assert.Equal(t, 2, out.NewLevel)
	assert.Equal(t, 1, out.Streak)
	assert.ElementsMatch(t,
		[]model.AchievementID{model.AchievementFirstPractice, model.AchievementPerfectScore},
		out.AchievementsUnlocked)

	require.Len(t, p.History, 1)
	assert.Equal(t, 97, p.History[0].XPGained)
	assert.Equal(t, model.English, p.History[0].Language)
	assert.Equal(t, "ok", p.History[0].Feedback)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *p.LastPracticeDate)
}

func TestApplyPracticeOutcome_XPFloorsScore(t *testing.T) {
	for score, want := range map[float64]int{2.3: 23, 0: 0, 10: 100, 5.55: 55, 7.1: 71} {
		p := model.NewUserProfile("s")
		out := practice(p, score, model.English, day(0))
		assert.Equal(t, want, out.XPGained, fmt.Sprint(score))
	}
}

func TestApplyPracticeOutcome_ClampsScore(t *testing.T) {
	p := model.NewUserProfile("s")
	out := practice(p, 14, model.English, day(0))
	assert.Equal(t, 100, out.XPGained)
	assert.Equal(t, 10.0, p.TotalScore)
}

func TestApplyPracticeOutcome_NaNScoreCountsAsZero(t *testing.T) {
	p := model.NewUserProfile("s")

	out := practice(p, math.NaN(), model.English, day(0))

	assert.Equal(t, 0, out.XPGained)
	assert.Equal(t, 50, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0.0, p.TotalScore)
	assert.Equal(t, 0.0, p.History[0].Score)
}

func TestApplyPracticeOutcome_StreakRules(t *testing.T) {
	p := model.NewUserProfile("s")

	assert.Equal(t, 1, practice(p, 3, model.English, day(0)).Streak)
	assert.Equal(t, 2, practice(p, 3, model.English, day(1)).Streak)

	// 同一天再次练习不改变连续天数
	same := practice(p, 3, model.English, day(1).Add(3*time.Hour))
	assert.Equal(t, 2, same.Streak)
	assert.NotContains(t, same.AchievementsUnlocked, model.AchievementThreeDayStreak)

	third := practice(p, 3, model.English, day(2))
	assert.Equal(t, 3, third.Streak)
	assert.Contains(t, third.AchievementsUnlocked, model.AchievementThreeDayStreak)

	// 中断后从 1 重新开始
	assert.Equal(t, 1, practice(p, 3, model.English, day(5)).Streak)
	assert.Equal(t, 2, practice(p, 3, model.English, day(6)).Streak)
	again := practice(p, 3, model.English, day(7))
	assert.Equal(t, 3, again.Streak)
	assert.NotContains(t, again.AchievementsUnlocked, model.AchievementThreeDayStreak)
}

func TestApplyPracticeOutcome_StoredDateInOtherZone(t *testing.T) {
	p := model.NewUserProfile("s")
	loc := time.FixedZone("UTC-5", -5*3600)
	stored := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).In(loc)
	p.LastPracticeDate = &stored
	p.Streak = 1

	out := practice(p, 3, model.English, day(1))
	assert.Equal(t, 2, out.Streak)
}

func TestApplyPracticeOutcome_SessionMilestones(t *testing.T) {
	p := model.NewUserProfile("s")

	var unlocked []model.AchievementID
	for i := 0; i < 6; i++ {
		out := practice(p, 1, model.English, day(0))
		unlocked = append(unlocked, out.AchievementsUnlocked...)
	}

	assert.Equal(t, []model.AchievementID{model.AchievementFirstPractice, model.AchievementFivePractices}, unlocked)
	assert.Equal(t, 6, p.SessionCount)
	// 6 * 10 + 2 * 50
	assert.Equal(t, 160, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.InDelta(t, 1.0, p.AverageScore(), 1e-9)
}

func TestApplyPracticeOutcome_Multilingual(t *testing.T) {
	p := model.NewUserProfile("s")

	first := practice(p, 2, model.English, day(0))
	assert.NotContains(t, first.AchievementsUnlocked, model.AchievementMultilingual)

	again := practice(p, 2, model.English, day(0))
	assert.NotContains(t, again.AchievementsUnlocked, model.AchievementMultilingual)

	second := practice(p, 2, model.Spanish, day(0))
	assert.Contains(t, second.AchievementsUnlocked, model.AchievementMultilingual)

	third := practice(p, 2, model.French, day(0))
	assert.NotContains(t, third.AchievementsUnlocked, model.AchievementMultilingual)
	assert.Equal(t, []string{"english", "french", "spanish"}, p.LanguagesPracticed.Sorted())
}

func TestApplyPracticeOutcome_Invariants(t *testing.T) {
	p := model.NewUserProfile("s")
	langs := []model.Language{model.English, model.German, model.French}
	seen := map[string]bool{}

	for i := 0; i < 30; i++ {
		before := p.Achievements.Clone()
		out := practice(p, float64(i%11), langs[i%len(langs)], day(i/2))

		for id := range before {
			assert.True(t, p.Achievements.Contains(id), "achievements never disappear")
		}
		for _, id := range out.AchievementsUnlocked {
			assert.False(t, seen[string(id)], "unlocked twice: %s", id)
			seen[string(id)] = true
		}
		assert.Equal(t, p.XP/100+1, p.Level)
		assert.Equal(t, p.Level, out.NewLevel)
		assert.Len(t, p.History, i+1)
	}
}

func TestLearnWord(t *testing.T) {
	p := model.NewUserProfile("s")

	out := LearnWord(p, "  Serendipity ")
	assert.True(t, out.Added)
	assert.Equal(t, "Serendipity", out.Word)
	assert.Equal(t, 5, out.XPGained)
	assert.Equal(t, 5, p.XP)

	dup := LearnWord(p, "Serendipity")
	assert.False(t, dup.Added)
	assert.Equal(t, 0, dup.XPGained)
	assert.Equal(t, 5, p.XP)

	blank := LearnWord(p, "   ")
	assert.False(t, blank.Added)
	assert.Equal(t, 1, p.LearnedWords.Len())
}

func TestLearnWord_VocabularyMaster(t *testing.T) {
	p := model.NewUserProfile("s")

	for i := 1; i <= 9; i++ {
		out := LearnWord(p, fmt.Sprintf("word%d", i))
		assert.Empty(t, out.AchievementsUnlocked)
	}

	tenth := LearnWord(p, "word10")
	assert.Equal(t, []model.AchievementID{model.AchievementVocabularyMaster}, tenth.AchievementsUnlocked)
	// 10 * 5 + 50
	assert.Equal(t, 100, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.True(t, tenth.LevelUp)

	eleventh := LearnWord(p, "word11")
	assert.Empty(t, eleventh.AchievementsUnlocked)
	assert.Equal(t, 105, p.XP)
	assert.Equal(t, "word1", p.LearnedWords.Items()[0])
}
