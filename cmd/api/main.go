package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "GameServer_Backend/docs"
	"GameServer_Backend/internal/auth"
	"GameServer_Backend/internal/config"
	"GameServer_Backend/internal/handler"
	"GameServer_Backend/internal/logger"
	"GameServer_Backend/internal/matchmaking"
	"GameServer_Backend/internal/middleware"
	"GameServer_Backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// @title           Game Server API
// @version         1.0
// @description     REST backend for player accounts, stat tracking and matchmaking.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg)
	auth.SetSigningKey(cfg.JWTSecretKey)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoClient, err := storage.ConnectMongo(connectCtx, cfg)
	if err != nil {
		slog.Error("failed to connect to mongo", "err", err)
		os.Exit(1)
	}
	db := mongoClient.Database(cfg.MongoDatabase)

	players, err := storage.NewPlayerStore(connectCtx, db)
	if err != nil {
		slog.Error("failed to init player store", "err", err)
		os.Exit(1)
	}
	queue := storage.NewQueueStore(db)
	matches := storage.NewMatchStore(db)

	redisClient, err := storage.NewRedisClient(cfg)
	if err != nil {
		slog.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	board := storage.NewLeaderboardStore(redisClient)

	mm := matchmaking.NewService(queue, matches)
	notifier := matchmaking.NewNotifier()
	h := handler.New(players, board, mm, notifier)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Backoffice-Key")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.MetricsMiddleware())

	// Credentials and queue joins are throttled per client IP.
	authLimiter := middleware.RateLimitByIP(time.Second, 5)
	queueLimiter := middleware.RateLimitByIP(200*time.Millisecond, 10)

	router.GET("/", h.Health)
	router.POST("/signup", authLimiter, h.Signup)
	router.POST("/login", authLimiter, h.Login)
	router.GET("/players/:username", h.GetPlayer)
	router.GET("/leaderboard", h.GetLeaderboard)

	protected := router.Group("/api", middleware.AuthMiddleware())
	{
		protected.GET("/profile", h.Profile)
		protected.POST("/players/me/stats", h.SubmitStats)

		protected.POST("/matchmaking/queue", queueLimiter, h.JoinQueue)
		protected.DELETE("/matchmaking/queue/:player_id", h.LeaveQueue)
		protected.GET("/matchmaking/queue/status/:player_id", h.QueueStatus)
		protected.GET("/matchmaking/queue/stats", h.QueueStats)
		protected.GET("/matchmaking/match/:match_id", h.MatchInfo)
		protected.POST("/matchmaking/match/:match_id/cancel", h.CancelMatch)
	}

	router.GET("/ws/matchmaking", h.MatchmakingSocket)

	backoffice := router.Group("/backoffice-api", middleware.BackofficeKeyMiddleware(cfg.BackofficeKey))
	backoffice.GET("/queue/cleanup", h.CleanupQueue)

	router.GET("/metrics", middleware.MetricsHandler())
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/doc.json")))
	router.GET("/redoc", handler.Redoc)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}
	go func() {
		slog.Info("http server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "err", err)
			os.Exit(1)
		}
	}()

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	go runQueueJanitor(janitorCtx, mm)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan
	slog.Info("received shutdown signal, shutting down")

	stopJanitor()

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown failed", "err", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		slog.Error("mongo disconnect failed", "err", err)
	}
	redisClient.Close()
}

// runQueueJanitor periodically drops queue entries that waited past the
// matchmaking timeout, mirroring the backoffice cleanup route.
func runQueueJanitor(ctx context.Context, mm *matchmaking.Service) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleaned, err := mm.CleanStaleEntries(ctx)
			if err != nil {
				slog.Error("queue janitor failed", "err", err)
				continue
			}
			if cleaned > 0 {
				slog.Info("removed stale queue entries", "count", cleaned)
			}
		}
	}
}
