package model

const (
	AnalysisSourceModel     = "model"
	AnalysisSourceHeuristic = "heuristic"
)

// AxisFeedback 单个维度的得分与反馈文本
type AxisFeedback struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// AnalysisResult 一次口语分析的结果，不单独持久化
// swagger:model AnalysisResult
type AnalysisResult struct {
	Score         float64      `json:"score"`
	Message       string       `json:"message"`
	Grammar       AxisFeedback `json:"grammar"`
	Fluency       AxisFeedback `json:"fluency"`
	Pronunciation AxisFeedback `json:"pronunciation"`
	Vocabulary    AxisFeedback `json:"vocabulary"`
	Suggestions   []string     `json:"suggestions"`
	Source        string       `json:"source"`
}
