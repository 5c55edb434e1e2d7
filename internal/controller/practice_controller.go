package controller

import (
	"errors"
	"fmt"
	"speech_coach_backend/internal/service"
	"speech_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService    *service.PracticeService
	ProgressionService *service.ProgressionService
	ContentService     *service.ContentService
}

func NewPracticeController(practiceService *service.PracticeService, progressionService *service.ProgressionService, contentService *service.ContentService) *PracticeController {
	return &PracticeController{
		PracticeService:    practiceService,
		ProgressionService: progressionService,
		ContentService:     contentService,
	}
}

type LearnWordRequest struct {
	Word string `json:"word"`
}

type LearnWordResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	XPGained int    `json:"xpGained"`
}

// @Summary 获取练习题目
// @Description 随机返回指定语言的一道口语练习题，未知语言回退为英语
// @Tags 口语练习
// @Produce json
// @Param language query string false "english|spanish|french|german" default(english)
// @Success 200 {object} util.Response{data=service.PromptResponse}
// @Router /api/prompt [get]
func (c *PracticeController) GetPrompt(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.RandomPrompt(ctx.DefaultQuery("language", "english")))
}

// @Summary 提交口语练习
// @Description 分析转写文本并返回各维度得分与建议，同时更新学习进度
// @Tags 口语练习
// @Accept json
// @Produce json
// @Param request body service.FeedbackRequest true "练习内容"
// @Success 200 {object} util.Response{data=service.FeedbackResponse}
// @Failure 400 {object} util.Response
// @Router /api/feedback [post]
func (c *PracticeController) SubmitFeedback(ctx *gin.Context) {
	var req service.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "No data provided")
		return
	}

	resp, err := c.PracticeService.SubmitFeedback(ctx.Request.Context(), util.GetSessionID(ctx), req)
	if err != nil {
		if errors.Is(err, util.ErrEmptyTranscript) {
			util.BadRequest(ctx, "No transcript provided")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary 学习单词
// @Description 将单词加入已学词汇，首次学习奖励 5 XP
// @Tags 词汇
// @Accept json
// @Produce json
// @Param request body LearnWordRequest true "单词"
// @Success 200 {object} util.Response{data=LearnWordResponse}
// @Failure 400 {object} util.Response
// @Router /api/learn-word [post]
func (c *PracticeController) LearnWord(ctx *gin.Context) {
	var req LearnWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "No data provided")
		return
	}

	out, err := c.ProgressionService.LearnWord(ctx.Request.Context(), util.GetSessionID(ctx), req.Word)
	if err != nil && !errors.Is(err, util.ErrEmptyWord) {
		util.LogInternalError(ctx, err)
		return
	}

	if !out.Added {
		util.Success(ctx, LearnWordResponse{Success: false, Message: "Failed to add word"})
		return
	}

	util.Success(ctx, LearnWordResponse{
		Success:  true,
		Message:  fmt.Sprintf("Added %q to your learned words!", out.Word),
		XPGained: out.XPGained,
	})
}
