package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/logger"
	"speech_coach_backend/pkg/monitoring"
	"speech_coach_backend/pkg/tracing"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts    = 3
	defaultAttemptTimeout = 20 * time.Second
)

var (
	errMissingField = errors.New("missing required field")
	errNotANumber   = errors.New("score is not a number")
)

var requiredAnalysisFields = []string{
	"grammar_score", "fluency_score", "pronunciation_score",
	"vocabulary_score", "overall_score", "grammar_feedback",
	"fluency_feedback", "pronunciation_feedback",
	"vocabulary_feedback", "overall_feedback", "suggestions",
}

type attemptOutcome string

const (
	outcomeParsed           attemptOutcome = "parsed"
	outcomeMalformed        attemptOutcome = "malformed"
	outcomeTransportFailure attemptOutcome = "transport_failure"
)

type attemptResult struct {
	outcome attemptOutcome
	result  model.AnalysisResult
	err     error
}

// AnalysisService 调用外部模型获取结构化反馈，未配置或多次失败时回退到 HeuristicScorer。
// Analyze 不返回错误。
type AnalysisService struct {
	client AnalysisClient
	scorer *HeuristicScorer

	mu             sync.RWMutex
	maxAttempts    int
	attemptTimeout time.Duration
}

func NewAnalysisService(client AnalysisClient, scorer *HeuristicScorer, cfg config.AIConfig) *AnalysisService {
	s := &AnalysisService{
		client: client,
		scorer: scorer,
	}
	s.UpdateSettings(cfg.MaxAttempts, cfg.AttemptTimeout)
	return s
}

// UpdateSettings 运行时替换重试参数，非正数恢复默认值
func (s *AnalysisService) UpdateSettings(maxAttempts int, attemptTimeout time.Duration) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}

	s.mu.Lock()
	s.maxAttempts = maxAttempts
	s.attemptTimeout = attemptTimeout
	s.mu.Unlock()
}

func (s *AnalysisService) settings() (int, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxAttempts, s.attemptTimeout
}

func (s *AnalysisService) Analyze(ctx context.Context, transcript, prompt string, language model.Language) model.AnalysisResult {
	ctx, span := tracing.Tracer.Start(ctx, "analysis.Analyze")
	defer span.End()
	span.SetAttributes(attribute.String("language", language.String()))

	if s.client == nil {
		span.SetAttributes(attribute.String("analysis.source", model.AnalysisSourceHeuristic))
		return s.fallback(transcript, prompt, language, "not_configured")
	}

	maxAttempts, timeout := s.settings()
	instruction := buildAnalysisInstruction(transcript, prompt, language)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res := s.attempt(ctx, instruction, timeout)
		monitoring.AnalysisAttempts.WithLabelValues(string(res.outcome)).Inc()

		if res.outcome == outcomeParsed {
			span.SetAttributes(
				attribute.String("analysis.source", model.AnalysisSourceModel),
				attribute.Int("analysis.attempts", attempt),
			)
			return res.result
		}

		logger.Log.Warn("Speech analysis attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxAttempts),
			zap.String("outcome", string(res.outcome)),
			zap.String("language", language.String()),
			zap.String("prompt", util.Truncate(prompt, 60)),
			zap.Error(res.err),
		)

		if ctx.Err() != nil {
			break
		}
	}

	span.SetAttributes(attribute.String("analysis.source", model.AnalysisSourceHeuristic))
	return s.fallback(transcript, prompt, language, "exhausted")
}

func (s *AnalysisService) attempt(ctx context.Context, instruction string, timeout time.Duration) attemptResult {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.client.Complete(attemptCtx, instruction)
	if err != nil {
		return attemptResult{outcome: outcomeTransportFailure, err: err}
	}

	result, err := parseAnalysis(raw)
	if err != nil {
		return attemptResult{outcome: outcomeMalformed, err: err}
	}

	return attemptResult{outcome: outcomeParsed, result: result}
}

func (s *AnalysisService) fallback(transcript, prompt string, language model.Language, reason string) model.AnalysisResult {
	monitoring.AnalysisFallbacks.WithLabelValues(reason).Inc()
	logger.Log.Info("Using heuristic scorer for speech analysis",
		zap.String("reason", reason),
		zap.String("language", language.String()),
		zap.String("prompt", util.Truncate(prompt, 60)),
	)
	return s.scorer.Score(transcript, prompt, language)
}

func buildAnalysisInstruction(transcript, prompt string, language model.Language) string {
	return fmt.Sprintf(`You are a language learning assistant. Analyze this speech response and provide detailed feedback with specific examples and improvements.

Language: %s
Original Prompt: %q
Student's Response: %q

Analyze the response and provide detailed feedback in the following JSON format exactly:
{
    "grammar_score": <number between 0-10>,
    "fluency_score": <number between 0-10>,
    "pronunciation_score": <number between 0-10>,
    "vocabulary_score": <number between 0-10>,
    "overall_score": <average of all scores>,
    "grammar_feedback": {
        "issues": ["<specific grammar mistake 1>", "<specific grammar mistake 2>"],
        "corrections": ["<corrected version 1>", "<corrected version 2>"],
        "explanation": "<brief explanation of the grammar rules>"
    },
    "fluency_feedback": {
        "issues": ["<specific fluency issue 1>", "<specific fluency issue 2>"],
        "improvements": ["<how to improve 1>", "<how to improve 2>"]
    },
    "pronunciation_feedback": {
        "difficult_words": ["<word 1>", "<word 2>"],
        "correct_pronunciation": ["<pronunciation guide 1>", "<pronunciation guide 2>"]
    },
    "vocabulary_feedback": {
        "basic_words_used": ["<word 1>", "<word 2>"],
        "suggested_alternatives": ["<better word 1>", "<better word 2>"],
        "context": "<explanation of when to use these alternatives>"
    },
    "overall_feedback": "<2-3 sentences of general feedback>",
    "suggestions": [
        "<specific actionable suggestion 1>",
        "<specific actionable suggestion 2>",
        "<specific actionable suggestion 3>"
    ]
}

Important:
1. Provide specific examples from the student's response
2. Give clear, actionable corrections
3. Include brief explanations of rules or patterns
4. Respond ONLY with the JSON object, no other text`, language, prompt, transcript)
}

// flexScore 兼容数字和数字字符串
type flexScore float64

func (f *flexScore) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return errNotANumber
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errNotANumber
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return errNotANumber
		}
	}
	// "NaN" / "Inf" 能被 ParseFloat 解析，但不是合法分数
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return errNotANumber
	}
	*f = flexScore(n)
	return nil
}

type analysisDocument struct {
	GrammarScore       flexScore `json:"grammar_score"`
	FluencyScore       flexScore `json:"fluency_score"`
	PronunciationScore flexScore `json:"pronunciation_score"`
	VocabularyScore    flexScore `json:"vocabulary_score"`
	OverallScore       flexScore `json:"overall_score"`
	GrammarFeedback    struct {
		Issues      []string `json:"issues"`
		Corrections []string `json:"corrections"`
		Explanation string   `json:"explanation"`
	} `json:"grammar_feedback"`
	FluencyFeedback struct {
		Issues       []string `json:"issues"`
		Improvements []string `json:"improvements"`
	} `json:"fluency_feedback"`
	PronunciationFeedback struct {
		DifficultWords       []string `json:"difficult_words"`
		CorrectPronunciation []string `json:"correct_pronunciation"`
	} `json:"pronunciation_feedback"`
	VocabularyFeedback struct {
		BasicWordsUsed        []string `json:"basic_words_used"`
		SuggestedAlternatives []string `json:"suggested_alternatives"`
		Context               string   `json:"context"`
	} `json:"vocabulary_feedback"`
	OverallFeedback string   `json:"overall_feedback"`
	Suggestions     []string `json:"suggestions"`
}

func parseAnalysis(raw string) (model.AnalysisResult, error) {
	body := []byte(stripCodeFence(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("decode analysis: %w", err)
	}
	for _, key := range requiredAnalysisFields {
		if _, ok := fields[key]; !ok {
			return model.AnalysisResult{}, fmt.Errorf("%w: %s", errMissingField, key)
		}
	}

	var doc analysisDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("decode analysis: %w", err)
	}

	suggestions := doc.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return model.AnalysisResult{
		Score:   clampScore(float64(doc.OverallScore)),
		Message: doc.OverallFeedback,
		Grammar: model.AxisFeedback{
			Score:    clampScore(float64(doc.GrammarScore)),
			Feedback: FormatIssues(doc.GrammarFeedback.Issues, doc.GrammarFeedback.Corrections, doc.GrammarFeedback.Explanation),
		},
		Fluency: model.AxisFeedback{
			Score:    clampScore(float64(doc.FluencyScore)),
			Feedback: FormatIssues(doc.FluencyFeedback.Issues, doc.FluencyFeedback.Improvements, ""),
		},
		Pronunciation: model.AxisFeedback{
			Score:    clampScore(float64(doc.PronunciationScore)),
			Feedback: FormatPronunciation(doc.PronunciationFeedback.DifficultWords, doc.PronunciationFeedback.CorrectPronunciation),
		},
		Vocabulary: model.AxisFeedback{
			Score:    clampScore(float64(doc.VocabularyScore)),
			Feedback: FormatVocabulary(doc.VocabularyFeedback.BasicWordsUsed, doc.VocabularyFeedback.SuggestedAlternatives, doc.VocabularyFeedback.Context),
		},
		Suggestions: suggestions,
		Source:      model.AnalysisSourceModel,
	}, nil
}

// stripCodeFence 取第一个代码块的内容并去掉语言标记；没有代码块时原样返回（去首尾空白）
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}

	rest := text[start+3:]
	line := rest
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		line = rest[:nl]
	}
	// 语言标记可能带数字或符号（json5、c++），JSON 也可能紧跟在同一行
	if i := strings.IndexAny(line, "{["); i >= 0 {
		rest = rest[i:]
	} else {
		rest = rest[len(line):]
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}
