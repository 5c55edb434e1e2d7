package controller

import (
	"context"
	"speech_coach_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthController DB/Redis 为 nil 表示当前存储未使用该组件
type HealthController struct {
	StoreType string
	DB        *gorm.DB
	Redis     *redis.Client
}

func NewHealthController(storeType string, db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{StoreType: storeType, DB: db, Redis: rdb}
}

// @Summary 健康检查
// @Description 检查服务及存储组件状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	components := gin.H{"store": c.StoreType}
	healthy := true

	if c.DB != nil {
		components["database"] = "up"
		sqlDB, err := c.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			components["database"] = "down"
			healthy = false
		}
	}

	if c.Redis != nil {
		components["redis"] = "up"
		if err := c.Redis.Ping(pingCtx).Err(); err != nil {
			components["redis"] = "down"
			healthy = false
		}
	}

	if !healthy {
		util.ServiceUnavailable(ctx, "Store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
