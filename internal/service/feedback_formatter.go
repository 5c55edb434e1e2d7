package service

import (
	"fmt"
	"strings"
)

const (
	pronunciationHeader = "Focus on these words:"
	vocabularyHeader    = "Consider using these alternatives:"
)

func pairCount(a, b []string) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

// FormatIssues 将问题与纠正按位置配对输出，多余的项被截断
func FormatIssues(issues, corrections []string, explanation string) string {
	var lines []string
	for i := 0; i < pairCount(issues, corrections); i++ {
		lines = append(lines,
			fmt.Sprintf("• Issue %d: %s", i+1, strings.TrimSpace(issues[i])),
			fmt.Sprintf("  Correction: %s", strings.TrimSpace(corrections[i])),
		)
	}
	if explanation = strings.TrimSpace(explanation); explanation != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Note: "+explanation)
	}
	return strings.Join(lines, "\n")
}

func FormatPronunciation(words, guides []string) string {
	lines := []string{pronunciationHeader}
	for i := 0; i < pairCount(words, guides); i++ {
		lines = append(lines, fmt.Sprintf("• %s → %s", strings.TrimSpace(words[i]), strings.TrimSpace(guides[i])))
	}
	return strings.Join(lines, "\n")
}

func FormatVocabulary(basicWords, alternatives []string, context string) string {
	lines := []string{vocabularyHeader}
	for i := 0; i < pairCount(basicWords, alternatives); i++ {
		lines = append(lines, fmt.Sprintf("• Instead of '%s', try '%s'", strings.TrimSpace(basicWords[i]), strings.TrimSpace(alternatives[i])))
	}
	if context = strings.TrimSpace(context); context != "" {
		lines = append(lines, "", "Tip: "+context)
	}
	return strings.Join(lines, "\n")
}
