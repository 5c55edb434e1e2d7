package util

const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
	StoreRedis    = "redis"
)

// 进度规则常量
const (
	XPPerLevel        = 100
	AchievementBonus  = 50
	WordLearnedXP     = 5
	VocabularyPerDay  = 5
	PerfectScoreFloor = 9.5
)
