package model

import (
	"time"
)

// UserProfile 学习者的进度档案，以会话ID为键
// swagger:model UserProfile
type UserProfile struct {
	SessionID          string           `gorm:"primaryKey;size:36" json:"sessionId"`
	SessionCount       int              `gorm:"default:0" json:"sessions"`
	TotalScore         float64          `gorm:"default:0" json:"totalScore"`
	XP                 int              `gorm:"default:0" json:"xp"`
	Level              int              `gorm:"default:1" json:"level"`
	Streak             int              `gorm:"default:0" json:"streak"`
	LastPracticeDate   *time.Time       `json:"lastPracticeDate,omitempty"`
	Achievements       StringSet        `json:"achievements"`
	LearnedWords       OrderedSet       `json:"learnedWords"`
	LanguagesPracticed StringSet        `json:"languagesPracticed"`
	History            []PracticeRecord `gorm:"foreignKey:SessionID;references:SessionID" json:"progress"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

func NewUserProfile(sessionID string) *UserProfile {
	return &UserProfile{
		SessionID:          sessionID,
		Level:              1,
		Achievements:       NewStringSet(),
		LearnedWords:       NewOrderedSet(),
		LanguagesPracticed: NewStringSet(),
	}
}

// Clone 深拷贝，存储层对外只返回副本
func (p *UserProfile) Clone() *UserProfile {
	out := *p
	if p.LastPracticeDate != nil {
		d := *p.LastPracticeDate
		out.LastPracticeDate = &d
	}
	out.Achievements = p.Achievements.Clone()
	out.LearnedWords = p.LearnedWords.Clone()
	out.LanguagesPracticed = p.LanguagesPracticed.Clone()
	out.History = make([]PracticeRecord, len(p.History))
	copy(out.History, p.History)
	return &out
}

// AverageScore 所有练习的平均总分
func (p *UserProfile) AverageScore() float64 {
	if p.SessionCount == 0 {
		return 0
	}
	return p.TotalScore / float64(p.SessionCount)
}

// PracticeRecord 单次练习记录，追加后不可修改
// swagger:model PracticeRecord
type PracticeRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID   string    `gorm:"index;size:36;not null" json:"-"`
	PracticedAt time.Time `gorm:"not null" json:"date"`
	Language    Language  `gorm:"size:20" json:"language"`
	Prompt      string    `gorm:"type:text" json:"prompt"`
	Transcript  string    `gorm:"type:text" json:"transcript"`
	Score       float64   `json:"score"`
	Feedback    string    `gorm:"type:text" json:"feedback"`
	XPGained    int       `json:"xpGained"`
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}
