package service

import (
	"math"
	"math/rand"
	"speech_coach_backend/internal/model"
	"strings"
	"sync"
)

type feedbackTier struct {
	grammarIssues       []string
	grammarCorrections  []string
	grammarNote         string
	fluencyIssues       []string
	fluencyImprovements []string
	difficultWords      []string
	pronunciations      []string
	basicWords          []string
	alternatives        []string
	vocabularyTip       string
	overall             string
	suggestions         []string
}

var (
	lowTier = feedbackTier{
		grammarIssues:       []string{"Incomplete sentences", "Missing subject-verb agreement"},
		grammarCorrections:  []string{"Form complete sentences with subject and verb", "Make sure verbs agree with their subjects"},
		grammarNote:         "Remember to use complete sentences with proper structure: Subject + Verb + Object",
		fluencyIssues:       []string{"Long pauses between words", "Hesitation sounds (um, uh)"},
		fluencyImprovements: []string{"Practice speaking in shorter phrases first", "Record yourself and identify pause patterns"},
		difficultWords:      []string{"hello", "practice"},
		pronunciations:      []string{"heh-LOH", "PRAK-tis"},
		basicWords:          []string{"good", "nice"},
		alternatives:        []string{"excellent", "wonderful"},
		vocabularyTip:       "Using more specific adjectives makes your speech more engaging and precise",
		overall:             "Keep practicing! Focus on forming complete sentences and speaking more confidently.",
		suggestions: []string{
			"Record yourself speaking and listen for pauses",
			"Practice with simple, complete sentences first",
			"Use a dictionary to check word pronunciation",
		},
	}

	midTier = feedbackTier{
		grammarIssues:       []string{"Occasional tense mixing", "Article usage"},
		grammarCorrections:  []string{"Maintain consistent tense throughout", "Pay attention to a/an/the usage"},
		grammarNote:         "Focus on maintaining consistent verb tenses in your speech",
		fluencyIssues:       []string{"Some unnatural pauses", "Speed variations"},
		fluencyImprovements: []string{"Practice linking words together", "Maintain a steady speaking pace"},
		difficultWords:      []string{"vocabulary", "improvement"},
		pronunciations:      []string{"voh-KAB-yuh-lair-ee", "im-PROOV-muhnt"},
		basicWords:          []string{"said", "big"},
		alternatives:        []string{"expressed", "substantial"},
		vocabularyTip:       "Try incorporating more advanced vocabulary while maintaining natural speech",
		overall:             "Good effort! Your speech is improving. Focus on smoother delivery and more varied vocabulary.",
		suggestions: []string{
			"Practice speaking at a consistent pace",
			"Try using synonyms for common words",
			"Work on linking words together smoothly",
		},
	}

	highTier = feedbackTier{
		grammarIssues:       []string{"Minor preposition usage", "Complex sentence structures"},
		grammarCorrections:  []string{"Review preposition rules", "Break down complex thoughts into clear statements"},
		grammarNote:         "Your grammar is strong - focus on fine-tuning complex expressions",
		fluencyIssues:       []string{"Occasional rhythm breaks", "Natural flow"},
		fluencyImprovements: []string{"Practice with longer passages", "Incorporate more idiomatic expressions"},
		difficultWords:      []string{"sophisticated", "particularly"},
		pronunciations:      []string{"suh-FIS-ti-kay-ted", "par-TIK-yuh-ler-lee"},
		basicWords:          []string{"interesting", "difficult"},
		alternatives:        []string{"intriguing", "challenging"},
		vocabularyTip:       "Your vocabulary is good - try incorporating more idiomatic expressions",
		overall:             "Excellent work! Your speech is clear and well-structured. Focus on mastering more advanced expressions.",
		suggestions: []string{
			"Practice with more complex topics",
			"Work on incorporating idiomatic expressions",
			"Try speaking at a faster pace while maintaining clarity",
		},
	}
)

func tierFor(score float64) feedbackTier {
	switch {
	case score < 3:
		return lowTier
	case score < 7:
		return midTier
	default:
		return highTier
	}
}

// HeuristicScorer 外部模型不可用时的本地评分，依据长度和词汇丰富度；只有各维度的抖动是随机的
type HeuristicScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewHeuristicScorer(src rand.Source) *HeuristicScorer {
	return &HeuristicScorer{rng: rand.New(src)}
}

// OverallScore 未取整的本地总分，范围 [0,10]
func OverallScore(transcript string) float64 {
	tokens := strings.Fields(transcript)

	baseScore := math.Min(float64(len(tokens))/5, 10)

	distinct := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		distinct[strings.ToLower(tok)] = struct{}{}
	}
	uniqueRatio := math.Min(float64(len(distinct))/3, 10)

	return clampScore((baseScore + uniqueRatio) / 2)
}

func (s *HeuristicScorer) Score(transcript, prompt string, language model.Language) model.AnalysisResult {
	score := OverallScore(transcript)
	tier := tierFor(score)

	return model.AnalysisResult{
		Score:   roundScore(score),
		Message: tier.overall,
		Grammar: model.AxisFeedback{
			Score:    s.jitter(score),
			Feedback: FormatIssues(tier.grammarIssues, tier.grammarCorrections, tier.grammarNote),
		},
		Fluency: model.AxisFeedback{
			Score:    s.jitter(score),
			Feedback: FormatIssues(tier.fluencyIssues, tier.fluencyImprovements, ""),
		},
		Pronunciation: model.AxisFeedback{
			Score:    s.jitter(score),
			Feedback: FormatPronunciation(tier.difficultWords, tier.pronunciations),
		},
		Vocabulary: model.AxisFeedback{
			Score:    s.jitter(score),
			Feedback: FormatVocabulary(tier.basicWords, tier.alternatives, tier.vocabularyTip),
		},
		Suggestions: append([]string(nil), tier.suggestions...),
		Source:      model.AnalysisSourceHeuristic,
	}
}

// jitter 在 [-1, 1] 内均匀扰动
func (s *HeuristicScorer) jitter(score float64) float64 {
	s.mu.Lock()
	offset := s.rng.Float64()*2 - 1
	s.mu.Unlock()
	return roundScore(clampScore(score + offset))
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 10)
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
