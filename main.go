package main

import (
	"context"
	"regexp"
	"scorecard/config"
	"scorecard/controller"
	"scorecard/cron"
	"scorecard/docs"
	"scorecard/logger"
	"scorecard/repository"
	"scorecard/service"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
)

// @title           Scorecard API
// @version         1.0
// @description     Tournament scoring, handicaps and integrity alerts.
func main() {
	t := time.Now()

	cfg := config.Env()
	log := logger.InitLogger(cfg.LogLevel, cfg.LogFormat, config.IsDevelopment())

	db, err := config.InitDB(cfg, repository.Models()...)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	store := repository.NewGormStore(db)

	alerts, windows := integrityStores(cfg, log)
	events := eventSink(cfg, log)

	cheat := service.NewCheatService(alerts, windows, cfg.RapidWindow, cfg.RapidThreshold)
	tournaments := service.NewTournamentService(store, events)
	leaderboard := service.NewLeaderboardService(store)
	handicaps := service.NewHandicapService(store)
	services := &controller.Services{
		Scores:      service.NewScoreService(store, cheat),
		Leaderboard: leaderboard,
		Tournaments: tournaments,
		Completion:  service.NewCompletionService(store, tournaments, leaderboard, handicaps, events, cfg.CompletionWorkers),
		Handicaps:   handicaps,
		Cheat:       cheat,
		Live:        controller.NewLiveHub(tournaments, leaderboard),
	}
	services.Scores.SetBroadcaster(services.Live)
	cheat.SetBroadcaster(services.Live)
	services.Live.Start(context.Background())

	janitor, err := cron.NewWindowJanitor(cheat, time.Minute)
	if err != nil {
		log.WithError(err).Fatal("Failed to create window janitor")
	}
	if err := janitor.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start window janitor")
	}
	defer func() { _ = janitor.Shutdown() }()

	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Error("Failed to set trusted proxies")
		return
	}
	addLogger(r)
	addMetrics(r)
	addDocs(r)
	setCors(r)
	controller.SetRoutes(r, services)
	log.WithField("startup", time.Since(t).String()).Info("Server started")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Error("Failed to start server")
	}
}

// integrityStores shares windows and alerts through redis when configured.
func integrityStores(cfg *config.Config, log *logrus.Logger) (service.AlertStore, service.SubmissionWindowTracker) {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set, submission windows and alerts are process local")
		return service.NewMemoryAlertStore(cfg.AlertCapacity), service.NewMemoryWindowTracker(cfg.RapidWindow)
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("Failed to connect to redis")
	}
	return service.NewRedisAlertStore(client, cfg.AlertCapacity), service.NewRedisWindowTracker(client, cfg.RapidWindow)
}

func eventSink(cfg *config.Config, log *logrus.Logger) service.EventSink {
	sinkLogger := logger.WithComponent("event_sink")
	if cfg.KafkaBroker == "" {
		return service.NewLogSink(sinkLogger)
	}
	writer, err := config.GetWriter(cfg)
	if err != nil {
		log.WithError(err).Error("Kafka unavailable, logging tournament events instead")
		return service.NewLogSink(sinkLogger)
	}
	return service.NewKafkaSink(writer, sinkLogger)
}

func addLogger(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/metrics"},
	}))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	re := regexp.MustCompile(`\d+`)
	roomRe := regexp.MustCompile(`live/[^/]+$`)
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := strings.Split(c.Request.URL.String(), "?")[0]
		url = re.ReplaceAllString(url, "?")
		url = roomRe.ReplaceAllString(url, "live/?")
		return strings.TrimPrefix(url, "/api")
	}
	p.MetricsPath = "/api/metrics"
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

func setCors(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}
