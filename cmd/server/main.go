// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gen-archive-go/internal/config"
	"gen-archive-go/internal/events"
	"gen-archive-go/internal/handler"
	"gen-archive-go/internal/middleware"
	"gen-archive-go/internal/pipeline"
	"gen-archive-go/internal/repository"
	"gen-archive-go/internal/service"
	"gen-archive-go/internal/sheet"
	"gen-archive-go/internal/store"
	"gen-archive-go/pkg/database"
	"gen-archive-go/pkg/kafka"
	"gen-archive-go/pkg/log"
	"gen-archive-go/pkg/storage"
	"gen-archive-go/pkg/tasks"
	"gen-archive-go/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("日志记录器初始化成功")

	// 3. 按配置初始化外部依赖。Redis/Kafka/MinIO 均为可选，
	// 文件后端加空配置即可纯本地运行。
	if cfg.Database.Redis.Addr != "" {
		database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	}
	if cfg.MinIO.Endpoint != "" {
		storage.InitMinIO(cfg.MinIO)
	}

	mirrorEnabled := cfg.Kafka.Brokers != "" && cfg.MinIO.Endpoint != "" && cfg.Database.Redis.Addr != ""
	if mirrorEnabled {
		kafka.InitProducer(cfg.Kafka)
	}

	// 4. 初始化持久化后端
	repo := newStore(cfg.Storage)

	// 5. 初始化记录仓库与变更推送
	recordStore := store.NewRecordStore(repo, cfg.Sheet.CSVURL != "")
	hub := events.NewHub()
	recordStore.SetOnChange(hub.Broadcast)

	// 6. 初始化 Service (依赖注入)
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenExpireHours)

	var sheetCache *repository.SheetCache
	if cfg.Database.Redis.Addr != "" && cfg.Sheet.CacheTTLMinutes > 0 {
		sheetCache = repository.NewSheetCache(database.RDB, time.Duration(cfg.Sheet.CacheTTLMinutes)*time.Minute)
	}

	var enqueue func(tasks.AttachmentMirrorTask) error
	if mirrorEnabled {
		enqueue = kafka.ProduceMirrorTask
	}

	sheetClient := sheet.NewClient(cfg.Sheet.CSVURL, time.Duration(cfg.Sheet.FetchTimeoutSeconds)*time.Second)
	feedService := service.NewFeedService(recordStore, sheetClient, sheetCache, enqueue)
	authService := service.NewAuthService(recordStore, jwtManager, cfg.Telegram.BotToken)
	promptService := service.NewPromptService(recordStore)
	showcaseService := service.NewShowcaseService(recordStore)
	uploadService := service.NewUploadService(cfg.MinIO)

	// 7. 启动后台 Kafka 消费者处理附件镜像
	if mirrorEnabled {
		go kafka.StartConsumer(cfg.Kafka, pipeline.NewMirrorProcessor(cfg.MinIO))
	}

	// 7.1 后台执行一次表格导入
	if cfg.Sheet.CSVURL != "" {
		go feedService.LoadSheet(context.Background())
	}

	// 8. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Use(middleware.OptionalAuth(jwtManager))

	// 9. 注册路由
	apiV1 := r.Group("/api/v1")
	{
		feed := apiV1.Group("/feed")
		{
			h := handler.NewFeedHandler(feedService)
			feed.GET("", h.GetFeed)
			feed.PUT("/query", h.SetQuery)
			feed.POST("/more", h.LoadMore)
			feed.GET("/reveal/:id", h.Reveal)
			feed.GET("/suggestions", h.Suggestions)
			feed.GET("/ranking", h.Ranking)
		}

		posts := apiV1.Group("/posts")
		{
			h := handler.NewPostHandler(feedService)
			posts.POST("", h.CreatePost)
			posts.POST("/:id/reviews", h.CreateReview)
		}

		auth := apiV1.Group("/auth")
		{
			h := handler.NewAuthHandler(authService)
			auth.POST("/telegram", h.TelegramLogin)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", h.Me)
		}

		prompts := apiV1.Group("/prompts")
		{
			h := handler.NewPromptHandler(promptService)
			prompts.GET("", h.List)
			prompts.POST("/:id/vote", h.Vote)
		}

		showcases := apiV1.Group("/showcases")
		{
			h := handler.NewShowcaseHandler(showcaseService)
			showcases.GET("", h.List)
			showcases.POST("", h.Create)
		}

		if cfg.MinIO.Endpoint != "" {
			apiV1.POST("/attachments", handler.NewUploadHandler(uploadService).Upload)
		}

		apiV1.GET("/events", func(c *gin.Context) {
			hub.Serve(c.Writer, c.Request)
		})
	}

	// 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}
	log.Info("服务已优雅关闭")
}

// newStore 按配置选择持久化后端，默认为文件后端。
func newStore(cfg config.StorageConfig) repository.Store {
	switch cfg.Backend {
	case "mysql":
		database.InitMySQL(config.Conf.Database.MySQL.DSN)
		repo, err := repository.NewGormStore(database.DB)
		if err != nil {
			log.Fatalf("初始化 MySQL 存储后端失败: %v", err)
		}
		return repo
	default:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "./data"
		}
		repo, err := repository.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("初始化文件存储后端失败: %v", err)
		}
		return repo
	}
}
