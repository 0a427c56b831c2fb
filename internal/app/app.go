package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/config"
	"github.com/Shamanthsheni/SmartCareerAI/internal/controller"
	"github.com/Shamanthsheni/SmartCareerAI/internal/llm"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/logger"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/monitoring"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/security"
	"github.com/Shamanthsheni/SmartCareerAI/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user           *repository.UserRepository
	quiz           *repository.QuizRepository
	recommendation *repository.RecommendationRepository
	chat           *repository.ChatRepository
	college        *repository.CollegeRepository
}

type services struct {
	advisor        *service.AdvisorService
	user           *service.UserService
	quiz           *service.QuizService
	recommendation *service.RecommendationService
	chat           *service.ChatService
	college        *service.CollegeService
	analytics      *service.AnalyticsService
}

type controllers struct {
	health         *controller.HealthController
	user           *controller.UserController
	quiz           *controller.QuizController
	recommendation *controller.RecommendationController
	chat           *controller.ChatController
	college        *controller.CollegeController
	analytics      *controller.AnalyticsController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 应用热更新后的配置并通知已注册的回调
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	logger.Log.Info("Config reloaded")
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		user:           repository.NewUserRepository(),
		quiz:           repository.NewQuizRepository(),
		recommendation: repository.NewRecommendationRepository(),
		chat:           repository.NewChatRepository(),
		college:        repository.NewCollegeRepository(repository.DefaultColleges()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	client, err := llm.NewClient(cfg.AI)
	if err != nil {
		logger.Log.Fatal("Failed to initialize AI client", zap.Error(err))
		log.Fatalf("Failed to initialize AI client: %v", err)
	}

	s.advisor = service.NewAdvisorService(client, cfg.AI)
	s.user = service.NewUserService(repos.user)
	s.quiz = service.NewQuizService(repos.quiz, s.advisor, repository.DefaultQuizQuestions())
	s.recommendation = service.NewRecommendationService(repos.recommendation, repos.quiz, s.advisor)
	s.chat = service.NewChatService(repos.chat, s.advisor)
	s.college = service.NewCollegeService(repos.college)
	s.analytics = service.NewAnalyticsService(repos.user, repos.quiz, repos.recommendation, repos.chat)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:         controller.NewHealthController(),
		user:           controller.NewUserController(s.user),
		quiz:           controller.NewQuizController(s.quiz),
		recommendation: controller.NewRecommendationController(s.recommendation),
		chat:           controller.NewChatController(s.chat),
		college:        controller.NewCollegeController(s.college),
		analytics:      controller.NewAnalyticsController(s.analytics),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	repos := app.initRepositories()
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services)

	// 预置演示用户，保证前端演示流程开箱即用
	services.user.SeedDemoUser()

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("smartcareer-ai", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
