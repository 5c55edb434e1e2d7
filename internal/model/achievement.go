package model

type AchievementID string

const (
	AchievementFirstPractice    AchievementID = "first_practice"
	AchievementFivePractices    AchievementID = "five_practices"
	AchievementPerfectScore     AchievementID = "perfect_score"
	AchievementThreeDayStreak   AchievementID = "three_day_streak"
	AchievementVocabularyMaster AchievementID = "vocabulary_master"
	AchievementMultilingual     AchievementID = "multilingual"
)

// AchievementDefinition 成就目录中的一项，只读
// swagger:model AchievementDefinition
type AchievementDefinition struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
}

var AchievementCatalog = []AchievementDefinition{
	{ID: AchievementFirstPractice, Name: "First Steps", Description: "Complete your first practice session", Icon: "🎯"},
	{ID: AchievementFivePractices, Name: "Getting Fluent", Description: "Complete 5 practice sessions", Icon: "🔥"},
	{ID: AchievementPerfectScore, Name: "Perfect Pronunciation", Description: "Get a perfect score on a practice", Icon: "🌟"},
	{ID: AchievementThreeDayStreak, Name: "Consistency is Key", Description: "Practice for 3 days in a row", Icon: "📆"},
	{ID: AchievementVocabularyMaster, Name: "Word Wizard", Description: "Learn 10 new vocabulary words", Icon: "📚"},
	{ID: AchievementMultilingual, Name: "Global Citizen", Description: "Practice in at least 2 different languages", Icon: "🌍"},
}

func FindAchievement(id AchievementID) (AchievementDefinition, bool) {
	for _, a := range AchievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDefinition{}, false
}
