package middleware

import (
	"net/http"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionMiddleware 从签名 Cookie 中解析匿名会话ID；缺失或无效时签发新会话
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if token, err := c.Cookie(cfg.CookieName); err == nil && token != "" {
			claims, err := util.ParseSessionToken(token, cfg.Secret)
			if err != nil {
				logger.Log.Debug("Discarding invalid session cookie", zap.Error(err))
			} else {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			token, err := util.GenerateSessionToken(sessionID, cfg.Secret, cfg.ExpireTime)
			if err != nil {
				logger.Log.Error("Failed to sign session token", zap.Error(err))
				util.InternalServerError(c)
				c.Abort()
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, token, int(cfg.ExpireTime.Seconds()), "/", "", c.Request.TLS != nil, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// RequireSession 确保上游已解析会话
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if util.GetSessionID(c) == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
