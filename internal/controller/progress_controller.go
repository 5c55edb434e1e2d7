package controller

import (
	"speech_coach_backend/internal/service"
	"speech_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressionService *service.ProgressionService
	ContentService     *service.ContentService
}

func NewProgressController(progressionService *service.ProgressionService, contentService *service.ContentService) *ProgressController {
	return &ProgressController{ProgressionService: progressionService, ContentService: contentService}
}

// @Summary 获取学习进度
// @Description 返回当前会话的档案、平均分以及成就解锁情况
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response{data=service.ProgressReport}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	report, err := c.ProgressionService.Progress(ctx.Request.Context(), util.GetSessionID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary 成就目录
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response{data=[]model.AchievementDefinition}
// @Router /api/achievements [get]
func (c *ProgressController) GetAchievements(ctx *gin.Context) {
	util.Success(ctx, c.ContentService.Achievements())
}

// @Summary 每日词汇
// @Description 返回指定语言的前 5 个词汇及当前会话已学单词
// @Tags 词汇
// @Produce json
// @Param language query string false "english|spanish|french|german" default(english)
// @Success 200 {object} util.Response{data=service.VocabularyResponse}
// @Router /api/vocabulary [get]
func (c *ProgressController) GetVocabulary(ctx *gin.Context) {
	resp, err := c.ContentService.Vocabulary(ctx.Request.Context(), util.GetSessionID(ctx), ctx.DefaultQuery("language", "english"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}
