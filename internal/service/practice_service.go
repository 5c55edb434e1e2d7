package service

import (
	"context"
	"speech_coach_backend/internal/model"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/logger"
	"speech_coach_backend/pkg/monitoring"
	"strings"

	"go.uber.org/zap"
)

type FeedbackRequest struct {
	Transcript string `json:"transcript"`
	Prompt     string `json:"prompt"`
	Language   string `json:"language"`
}

// FeedbackResponse 分析结果；进度更新成功时附带进度字段
type FeedbackResponse struct {
	model.AnalysisResult
	*PracticeOutcome
}

type PracticeService struct {
	Analysis    *AnalysisService
	Progression *ProgressionService
}

func NewPracticeService(analysis *AnalysisService, progression *ProgressionService) *PracticeService {
	return &PracticeService{Analysis: analysis, Progression: progression}
}

// SubmitFeedback 分析一次练习并记入档案。进度记录失败只记日志，分析结果照常返回
func (s *PracticeService) SubmitFeedback(ctx context.Context, sessionID string, req FeedbackRequest) (*FeedbackResponse, error) {
	transcript := strings.TrimSpace(req.Transcript)
	if transcript == "" {
		return nil, util.ErrEmptyTranscript
	}
	language := model.ParseLanguage(req.Language)

	logger.Log.Info("Analyzing speech",
		zap.String("language", language.String()),
		zap.String("prompt", util.Truncate(req.Prompt, 60)),
		zap.Int("transcript_length", len(transcript)),
	)

	result := s.Analysis.Analyze(ctx, transcript, req.Prompt, language)
	resp := &FeedbackResponse{AnalysisResult: result}

	if sessionID == "" {
		return resp, nil
	}

	outcome, err := s.Progression.RecordPractice(ctx, sessionID, result, language, req.Prompt, transcript)
	if err != nil {
		monitoring.ProgressUpdateFailures.Inc()
		logger.Log.Error("Failed to record practice progress",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return resp, nil
	}

	resp.PracticeOutcome = &outcome
	return resp, nil
}
