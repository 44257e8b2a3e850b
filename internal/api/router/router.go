// Package router 注册HTTP路由与中间件。
package router

import (
	"context"

	"ats-analyzer-go/internal/api/handler"
	"ats-analyzer-go/internal/api/middleware"
	"ats-analyzer-go/internal/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/hertz-contrib/keyauth"
)

// RegisterRoutes 注册 API 路由
// server.api_key 非空时对 /api/v1 下的所有路由开启 X-API-Key 校验，
// 根路径和健康检查始终公开
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	h.Use(requestID())

	h.GET("/", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"message": "ATS Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": utils.H{
				"health":  "/api/v1/health",
				"analyze": "/api/v1/analyze (POST)",
			},
		})
	})

	h.GET("/api/v1/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"status":  "healthy",
			"message": "ATS Resume Analyzer API is running",
		})
	})

	api := h.Group("/api/v1")
	if cfg.Server.RateLimitQPM > 0 {
		api.Use(middleware.RateLimit(cfg.Server.RateLimitQPM))
	}
	if cfg.Server.APIKey != "" {
		api.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:X-API-Key", ""),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				return key == cfg.Server.APIKey, nil
			}),
			keyauth.WithErrorHandler(func(c context.Context, ctx *app.RequestContext, err error) {
				ctx.AbortWithStatusJSON(consts.StatusUnauthorized, utils.H{"error": "Invalid or missing API key"})
			}),
		))
	}

	api.POST("/analyze", analyzeHandler.HandleAnalyze)
}

// requestID 为每个请求补上 X-Request-ID 响应头，客户端带来的ID原样回传
func requestID() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		id := string(ctx.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header("X-Request-ID", id)
		ctx.Next(c)
	}
}
