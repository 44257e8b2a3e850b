package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-analyzer-go/internal/api/handler"
	"ats-analyzer-go/internal/api/router"
	"ats-analyzer-go/internal/config"
	"ats-analyzer-go/internal/dictionary"
	"ats-analyzer-go/internal/engine"
	"ats-analyzer-go/internal/extractor"
	appLogger "ats-analyzer-go/internal/logger"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg.Logger)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dict, err := dictionary.Load(cfg.Dictionary.Path)
	if err != nil {
		glog.Fatalf("加载词典失败: %v", err)
	}
	glog.Infof("词典加载成功，技能 %d 项，动词 %d 项", len(dict.Skills()), len(dict.ActionVerbs()))

	docExtractor, err := extractor.New(ctx, cfg.Extractor)
	if err != nil {
		glog.Fatalf("初始化文档提取器失败: %v", err)
	}
	glog.Info("文档提取器初始化成功")

	analysisEngine := engine.NewEngine(docExtractor, dict, cfg.Analyzer)
	analyzeHandler := handler.NewAnalyzeHandler(cfg, analysisEngine)
	glog.Info("分析引擎初始化成功")

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(int(cfg.Server.MaxUploadBytes()*2)),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		glog.CtxInfof(c, "%s %s -> %d (%s)",
			string(ctx.Method()), string(ctx.Path()),
			ctx.Response.StatusCode(), time.Since(start))
	})

	router.RegisterRoutes(h, cfg, analyzeHandler)
	glog.Info("HTTP路由注册成功")

	go func() {
		glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并把Hertz的日志也接到同一个输出上
func initLogger(cfg config.LoggerConfig) {
	appLogger.Init(appLogger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		TimeFormat:   cfg.TimeFormat,
		ReportCaller: cfg.ReportCaller,
	})

	glog.SetLogger(hertzadapter.From(appLogger.Logger))
	switch cfg.Level {
	case "debug":
		glog.SetLevel(glog.LevelDebug)
	case "warn":
		glog.SetLevel(glog.LevelWarn)
	case "error":
		glog.SetLevel(glog.LevelError)
	default:
		glog.SetLevel(glog.LevelInfo)
	}
}
