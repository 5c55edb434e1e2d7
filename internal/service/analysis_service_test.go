package service

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/model"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysis = `{
	"grammar_score": 8,
	"fluency_score": "7.5",
	"pronunciation_score": 6.5,
	"vocabulary_score": 7,
	"overall_score": 7.3,
	"grammar_feedback": {
		"issues": ["I go to school yesterday"],
		"corrections": ["I went to school yesterday"],
		"explanation": "Use the simple past for finished actions."
	},
	"fluency_feedback": {
		"issues": ["Pause before the verb"],
		"improvements": ["Link subject and verb"]
	},
	"pronunciation_feedback": {
		"difficult_words": ["yesterday"],
		"correct_pronunciation": ["YES-ter-day"]
	},
	"vocabulary_feedback": {
		"basic_words_used": ["eat"],
		"suggested_alternatives": ["have"],
		"context": "We usually 'have' meals."
	},
	"overall_feedback": "Solid answer with a tense slip.",
	"suggestions": ["Review past tense", "Shadow native speakers", "Record yourself"]
}`

// scriptedClient 按顺序回放预设回复，用完后重复最后一条
type scriptedClient struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
}

type scriptedReply struct {
	text string
	err  error
}

func (c *scriptedClient) Complete(ctx context.Context, instruction string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.calls
	if i >= len(c.replies) {
		i = len(c.replies) - 1
	}
	c.calls++
	return c.replies[i].text, c.replies[i].err
}

func (c *scriptedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// blockingClient 一直阻塞到单次尝试超时
type blockingClient struct{ calls int }

func (c *blockingClient) Complete(ctx context.Context, instruction string) (string, error) {
	c.calls++
	<-ctx.Done()
	return "", ctx.Err()
}

func newTestAnalysisService(client AnalysisClient) *AnalysisService {
	return NewAnalysisService(client, NewHeuristicScorer(rand.NewSource(1)), config.AIConfig{
		MaxAttempts:    3,
		AttemptTimeout: time.Second,
	})
}

func TestAnalyze_ParsesModelReply(t *testing.T) {
	client := &scriptedClient{replies: []scriptedReply{{text: validAnalysis}}}
	svc := newTestAnalysisService(client)

	res := svc.Analyze(context.Background(), "I go to school yesterday", "What did you do?", model.English)

	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, model.AnalysisSourceModel, res.Source)
	assert.Equal(t, 7.3, res.Score)
	assert.Equal(t, 8.0, res.Grammar.Score)
	assert.Equal(t, 7.5, res.Fluency.Score)
	assert.Equal(t, "Solid answer with a tense slip.", res.Message)
	assert.Equal(t, []string{"Review past tense", "Shadow native speakers", "Record yourself"}, res.Suggestions)
	assert.Equal(t,
		"• Issue 1: I go to school yesterday\n  Correction: I went to school yesterday\n\nNote: Use the simple past for finished actions.",
		res.Grammar.Feedback)
	assert.Equal(t, "• Issue 1: Pause before the verb\n  Correction: Link subject and verb", res.Fluency.Feedback)
	assert.Equal(t, "Focus on these words:\n• yesterday → YES-ter-day", res.Pronunciation.Feedback)
	assert.Equal(t, "Consider using these alternatives:\n• Instead of 'eat', try 'have'\n\nTip: We usually 'have' meals.", res.Vocabulary.Feedback)
}

func TestAnalyze_StripsFence(t *testing.T) {
	for _, reply := range []string{
		"```json\n" + validAnalysis + "\n```",
		"Here you go:\n```\n" + validAnalysis + "\n```\nThanks",
		"```JSON" + validAnalysis + "```",
	} {
		client := &scriptedClient{replies: []scriptedReply{{text: reply}}}
		res := newTestAnalysisService(client).Analyze(context.Background(), "text", "prompt", model.English)
		assert.Equal(t, model.AnalysisSourceModel, res.Source, reply)
	}
}

func TestAnalyze_RetriesMalformedThenSucceeds(t *testing.T) {
	client := &scriptedClient{replies: []scriptedReply{
		{text: "not json at all"},
		{text: `{"grammar_score": 5}`},
		{text: validAnalysis},
	}}
	svc := newTestAnalysisService(client)

	res := svc.Analyze(context.Background(), "text", "prompt", model.Spanish)

	assert.Equal(t, 3, client.callCount())
	assert.Equal(t, model.AnalysisSourceModel, res.Source)
}

func TestAnalyze_FallsBackAfterThreeFailures(t *testing.T) {
	client := &scriptedClient{replies: []scriptedReply{{err: errors.New("connection refused")}}}
	svc := newTestAnalysisService(client)

	transcript := "We go to school yesterday and they eat lunch"
	res := svc.Analyze(context.Background(), transcript, "prompt", model.English)

	assert.Equal(t, 3, client.callCount())
	assert.Equal(t, model.AnalysisSourceHeuristic, res.Source)
	assert.Equal(t, 2.4, res.Score)
}

func TestAnalyze_NoClientUsesHeuristic(t *testing.T) {
	svc := newTestAnalysisService(nil)

	a := svc.Analyze(context.Background(), "I like to read books on rainy days", "hobby", model.English)
	b := svc.Analyze(context.Background(), "I like to read books on rainy days", "hobby", model.English)

	assert.Equal(t, model.AnalysisSourceHeuristic, a.Source)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, a.Grammar.Feedback, b.Grammar.Feedback)
}

func TestAnalyze_TimeoutCountsAsFailedAttempt(t *testing.T) {
	client := &blockingClient{}
	svc := newTestAnalysisService(client)
	svc.UpdateSettings(2, 20*time.Millisecond)

	res := svc.Analyze(context.Background(), "short answer", "prompt", model.German)

	assert.Equal(t, 2, client.calls)
	assert.Equal(t, model.AnalysisSourceHeuristic, res.Source)
}

func TestAnalyze_ClampsOutOfRangeScores(t *testing.T) {
	reply := `{"grammar_score": 12, "fluency_score": -3, "pronunciation_score": 5, "vocabulary_score": 5,
		"overall_score": 11, "grammar_feedback": {}, "fluency_feedback": {}, "pronunciation_feedback": {},
		"vocabulary_feedback": {}, "overall_feedback": "ok", "suggestions": []}`
	client := &scriptedClient{replies: []scriptedReply{{text: reply}}}

	res := newTestAnalysisService(client).Analyze(context.Background(), "text", "prompt", model.English)

	assert.Equal(t, model.AnalysisSourceModel, res.Source)
	assert.Equal(t, 10.0, res.Score)
	assert.Equal(t, 10.0, res.Grammar.Score)
	assert.Equal(t, 0.0, res.Fluency.Score)
	assert.Equal(t, "Focus on these words:", res.Pronunciation.Feedback)
}

func TestParseAnalysis_Errors(t *testing.T) {
	_, err := parseAnalysis(`{"overall_score": 5}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingField)

	bad := `{"grammar_score": "high", "fluency_score": 1, "pronunciation_score": 1, "vocabulary_score": 1,
		"overall_score": 1, "grammar_feedback": {}, "fluency_feedback": {}, "pronunciation_feedback": {},
		"vocabulary_feedback": {}, "overall_feedback": "", "suggestions": []}`
	_, err = parseAnalysis(bad)
	assert.Error(t, err)

	_, err = parseAnalysis("```json\n[1,2]\n```")
	assert.Error(t, err)

	for _, v := range []string{`"NaN"`, `"Inf"`, `"-Infinity"`} {
		_, err = parseAnalysis(strings.Replace(validAnalysis, `"overall_score": 7.3`, `"overall_score": `+v, 1))
		assert.ErrorIs(t, err, errNotANumber, v)
	}
}

func TestAnalyze_NonFiniteScoreFallsBack(t *testing.T) {
	nan := strings.Replace(validAnalysis, `"overall_score": 7.3`, `"overall_score": "NaN"`, 1)
	client := &scriptedClient{replies: []scriptedReply{{text: nan}}}

	res := newTestAnalysisService(client).Analyze(context.Background(), "We go to school yesterday and they eat lunch", "prompt", model.English)

	assert.Equal(t, 3, client.callCount())
	assert.Equal(t, model.AnalysisSourceHeuristic, res.Source)
	assert.False(t, math.IsNaN(res.Score))
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 10.0)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0.0, clampScore(math.NaN()))
	assert.Equal(t, 10.0, clampScore(math.Inf(1)))
	assert.Equal(t, 0.0, clampScore(math.Inf(-1)))
	assert.Equal(t, 6.5, clampScore(6.5))
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json5\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```c++\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```{\"a\":1}```"))
	assert.Equal(t, `[1]`, stripCodeFence("```json [1]\n```"))
}
