package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_KeepsInsertionOrderAndRejectsDuplicates(t *testing.T) {
	var s OrderedSet
	assert.True(t, s.Add("resilience"))
	assert.True(t, s.Add("eloquent"))
	assert.False(t, s.Add("resilience"))

	assert.Equal(t, []string{"resilience", "eloquent"}, s.Items())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("eloquent"))
	assert.False(t, s.Contains("paradigm"))
}

func TestOrderedSet_ScanRoundTrip(t *testing.T) {
	s := NewOrderedSet("b", "a", "c")
	v, err := s.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["b","a","c"]`, valueText(v))

	var back OrderedSet
	require.NoError(t, back.Scan([]byte(`["b","a","c","a"]`)))
	assert.Equal(t, []string{"b", "a", "c"}, back.Items())

	var empty OrderedSet
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, 0, empty.Len())
}

func TestStringSet_SerializesSorted(t *testing.T) {
	s := NewStringSet("multilingual", "first_practice")
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["first_practice","multilingual"]`, string(b))

	assert.False(t, s.Add("multilingual"))
	assert.True(t, s.Add("perfect_score"))
	assert.Equal(t, 3, s.Len())
}

func TestUserProfile_CloneIsDeep(t *testing.T) {
	p := NewUserProfile("abc")
	p.Achievements.Add("first_practice")
	p.LearnedWords.Add("Paradigm")
	p.History = append(p.History, PracticeRecord{Score: 5})

	c := p.Clone()
	c.Achievements.Add("multilingual")
	c.LearnedWords.Add("Ubiquitous")
	c.History[0].Score = 9

	assert.False(t, p.Achievements.Contains("multilingual"))
	assert.Equal(t, 1, p.LearnedWords.Len())
	assert.Equal(t, 5.0, p.History[0].Score)
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Spanish, ParseLanguage(" Spanish "))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("klingon"))
}

func valueText(v interface{}) string {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case string:
		return t
	}
	return ""
}
