package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"betdiary/internal/config"
	cronrunner "betdiary/internal/cron"
	"betdiary/internal/db"
	"betdiary/internal/handler"
	"betdiary/internal/logger"
	gormrepository "betdiary/internal/repository/gorm"
	"betdiary/internal/service"

	_ "betdiary/docs"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("BD_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("BD_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)
	lifecycleSvc := &service.LifecycleService{
		Repo:                  store,
		Logger:                logger,
		VerificationThreshold: cfg.Verification.Threshold,
	}
	optionsSvc := &service.OptionsService{Repo: store}
	reportSvc := &service.ReportService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)

	teamHandler := &handler.TeamHandler{Repo: store}
	teamHandler.Register(engine)
	competitionHandler := &handler.CompetitionHandler{Repo: store}
	competitionHandler.Register(engine)
	marketHandler := &handler.MarketHandler{Repo: store}
	marketHandler.Register(engine)
	strategyHandler := &handler.StrategyHandler{Repo: store}
	strategyHandler.Register(engine)

	matchHandler := &handler.MatchHandler{Repo: store, Lifecycle: lifecycleSvc}
	matchHandler.Register(engine)
	preAnalysisHandler := &handler.PreAnalysisHandler{Repo: store}
	preAnalysisHandler.Register(engine)
	operationHandler := &handler.OperationHandler{Repo: store, Lifecycle: lifecycleSvc}
	operationHandler.Register(engine)
	cashHandler := &handler.CashHandler{Repo: store}
	cashHandler.Register(engine)
	optionsHandler := &handler.OptionsHandler{Options: optionsSvc}
	optionsHandler.Register(engine)
	reportHandler := &handler.ReportHandler{Reports: reportSvc}
	reportHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.VerificationScan, func(ctx context.Context) {
			matches, err := lifecycleSvc.PendingVerification(ctx, time.Now().UTC())
			if err != nil {
				logger.Warn("verification scan failed", zap.Error(err))
				return
			}
			if len(matches) > 0 {
				logger.Info("matches awaiting verification", zap.Int("count", len(matches)))
			}
		})
		if err != nil {
			logger.Warn("cron register verification scan failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
