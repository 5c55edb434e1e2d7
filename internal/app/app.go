package app

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"speech_coach_backend/internal/config"
	"speech_coach_backend/internal/controller"
	"speech_coach_backend/internal/repository"
	"speech_coach_backend/internal/service"
	"speech_coach_backend/internal/util"
	"speech_coach_backend/pkg/configwatcher"
	"speech_coach_backend/pkg/database"
	"speech_coach_backend/pkg/logger"
	"speech_coach_backend/pkg/monitoring"
	"speech_coach_backend/pkg/security"
	"speech_coach_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Store  repository.ProfileStore

	services        *services
	limiter         *security.Limiter
	tracer          *sdktrace.TracerProvider
	stop            chan struct{}
	configCallbacks []func(*config.Config)
}

type services struct {
	analysis    *service.AnalysisService
	progression *service.ProgressionService
	practice    *service.PracticeService
	content     *service.ContentService
}

type controllers struct {
	practice *controller.PracticeController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// initStore 按 store.type 选择档案存储
func (a *App) initStore(cfg *config.Config) (repository.ProfileStore, error) {
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
	}

	switch cfg.Store.Type {
	case util.StoreDatabase:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return nil, err
		}
		a.DB = db
		return repository.NewProfileRepository(db), nil
	case util.StoreRedis:
		if a.Redis == nil {
			return nil, errors.New("redis store selected but redis is disabled")
		}
		return repository.NewRedisProfileRepository(a.Redis, cfg.Session.ExpireTime), nil
	default:
		return repository.NewMemoryProfileRepository(), nil
	}
}

func (a *App) initServices(cfg *config.Config, store repository.ProfileStore) *services {
	s := &services{}

	client := service.NewAnalysisClient(cfg.AI)
	if client == nil {
		logger.Log.Warn("No AI API key configured, speech analysis will use the heuristic scorer")
	}

	s.analysis = service.NewAnalysisService(client, service.NewHeuristicScorer(rand.NewSource(time.Now().UnixNano())), cfg.AI)
	s.progression = service.NewProgressionService(store)
	s.practice = service.NewPracticeService(s.analysis, s.progression)
	s.content = service.NewContentService(s.progression, rand.NewSource(time.Now().UnixNano()))

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		practice: controller.NewPracticeController(s.practice, s.progression, s.content),
		progress: controller.NewProgressController(s.progression, s.content),
		health:   controller.NewHealthController(a.Config.Store.Type, a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	if gin.Mode() == gin.DebugMode {
		router.Use(gin.Logger())
	}
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ensureSessionSecret 开发模式下未配置密钥时生成一次性密钥，重启后旧会话失效
func ensureSessionSecret(cfg *config.Config) {
	if cfg.Session.Secret != "" {
		return
	}
	cfg.Session.Secret = uuid.NewString() + uuid.NewString()
	logger.Log.Warn("No session secret configured, generated an ephemeral one")
}

// New 组装应用但不初始化日志和追踪，测试直接使用
func New(cfg *config.Config) (*App, error) {
	ensureSessionSecret(cfg)

	app := &App{
		Config:  cfg,
		limiter: security.NewLimiter(cfg.RateLimit),
		stop:    make(chan struct{}),
	}

	store, err := app.initStore(cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store

	app.services = app.initServices(cfg, store)
	controllers := app.initControllers(app.services)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.services.analysis.UpdateSettings(newCfg.AI.MaxAttempts, newCfg.AI.AttemptTimeout)
		logger.Log.Info("Analysis settings updated",
			zap.Int("max_attempts", newCfg.AI.MaxAttempts),
			zap.Duration("attempt_timeout", newCfg.AI.AttemptTimeout),
		)
	})

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	go app.limiter.Run(app.stop)

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app, err := New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("speech-coach", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) watchConfig(ctx context.Context) {
	if a.Config.FilePath == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.FilePath, func(cfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(cfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close 释放后台任务与存储连接
func (a *App) Close() {
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.watchConfig(ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port), zap.String("store", a.Config.Store.Type))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
}
