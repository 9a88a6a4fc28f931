package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent_bridge_backend/internal/config"
	"talent_bridge_backend/internal/controller"
	"talent_bridge_backend/internal/middleware"
	"talent_bridge_backend/internal/repository"
	"talent_bridge_backend/internal/service"
	"talent_bridge_backend/pkg/configwatcher"
	"talent_bridge_backend/pkg/database"
	"talent_bridge_backend/pkg/logger"
	"talent_bridge_backend/pkg/monitoring"
	"talent_bridge_backend/pkg/security"
	"talent_bridge_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionStoreRedis = "redis"

	janitorInterval  = 5 * time.Minute
	shutdownTimeout  = 5 * time.Second
	saveDrainTimeout = 20 * time.Second
)

type App struct {
	Config    *config.Config
	ConfigDir string
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client

	stores          *stores
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type stores struct {
	sessions repository.SessionStore
	memory   *repository.MemorySessionStore
	records  *repository.SurveyRecordRepository
}

type services struct {
	survey     *service.SurveyClient
	assessment *service.AssessmentService
	plan       *service.PlanService
	report     *service.ReportService
}

type controllers struct {
	health        *controller.HealthController
	questionnaire *controller.QuestionnaireController
	assessment    *controller.AssessmentController
	proxy         *controller.SurveyProxyController
	report        *controller.ReportController
	plan          *controller.PlanController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initStores(cfg *config.Config) (*stores, error) {
	s := &stores{}

	switch cfg.Session.Store {
	case sessionStoreRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		s.sessions = repository.NewRedisSessionStore(rdb, cfg.Session.KeyPrefix, cfg.Session.TTL())
	default:
		s.memory = repository.NewMemorySessionStore(cfg.Session.TTL())
		s.sessions = s.memory
	}

	if !cfg.Database.Enabled {
		logger.Log.Info("Submission ledger disabled")
		return s, nil
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	a.DB = db

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	s.records = repository.NewSurveyRecordRepository(db)
	return s, nil
}

func (a *App) initServices(st *stores, cfg *config.Config) (*services, error) {
	s := &services{}

	s.survey = service.NewSurveyClient(cfg.Upstream)

	// a nil *SurveyRecordRepository must not reach the services as a
	// non-nil interface
	var ledger service.SubmissionLedger
	var reader service.SubmissionReader
	if st.records != nil {
		ledger = st.records
		reader = st.records
	}

	s.assessment = service.NewAssessmentService(st.sessions, s.survey, ledger)
	s.report = service.NewReportService(s.survey, reader)

	storage, err := service.NewStorageProvider(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init plan storage: %w", err)
	}
	s.plan = service.NewPlanService(storage, cfg.Storage.DefaultLocale)

	return s, nil
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		health:        controller.NewHealthController(a.DB, cfg.Session.Store),
		questionnaire: controller.NewQuestionnaireController(),
		assessment:    controller.NewAssessmentController(s.assessment),
		proxy:         controller.NewSurveyProxyController(s.survey),
		report:        controller.NewReportController(s.report),
		plan:          controller.NewPlanController(s.plan),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins, proxyPaths...))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(ctx context.Context, st *stores) {
	if st.memory != nil {
		st.memory.StartJanitor(ctx, janitorInterval)
	}

	if a.ConfigDir == "" {
		return
	}
	go func() {
		if err := configwatcher.WatchConfig(ctx, a.ConfigDir, a.applyConfig); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// NewApp builds the application from cfg. configDir is watched for changes
// once Run is called; pass "" to disable hot reload.
func NewApp(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
	}

	st, err := app.initStores(cfg)
	if err != nil {
		return nil, err
	}
	app.stores = st

	svcs, err := app.initServices(st, cfg)
	if err != nil {
		return nil, err
	}
	app.services = svcs
	ctrls := app.initControllers(svcs, cfg)

	app.RegisterConfigCallback(func(c *config.Config) {
		svcs.survey.SetUpstream(c.Upstream)
		logger.Log.Info("Survey API endpoints updated",
			zap.String("save_url", c.Upstream.SaveURL),
			zap.String("summary_url", c.Upstream.SummaryURL),
		)
	})

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	router := gin.New()
	app.Router = router
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls)

	return app, nil
}

func (a *App) Run() error {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	a.startBackgroundTasks(ctx, a.stores)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	// saves started by finished sessions still run after the listener closes
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), saveDrainTimeout)
	defer cancelDrain()
	if err := a.services.assessment.WaitForSaves(drainCtx); err != nil {
		logger.Log.Warn("Pending survey saves abandoned", zap.Error(err))
	}

	a.Close()
	logger.Log.Info("Server exiting")
	return nil
}

// Close releases the tracer and the database and redis connections.
func (a *App) Close() {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = logger.Log.Sync()
}
