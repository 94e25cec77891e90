package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/scenastudio/site-backend/configs"
	"github.com/scenastudio/site-backend/internal/application/services"
	"github.com/scenastudio/site-backend/internal/core/ports"
	"github.com/scenastudio/site-backend/internal/infrastructure/email"
	"github.com/scenastudio/site-backend/internal/infrastructure/health"
	"github.com/scenastudio/site-backend/internal/infrastructure/httpserver"
	"github.com/scenastudio/site-backend/internal/infrastructure/redis"
	"github.com/scenastudio/site-backend/internal/infrastructure/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting site backend...")

	// Initialize Redis client
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	redisCache := redis.NewRedisCache(redisClient, "sitecache")
	redisRateLimitRepo := redis.NewRateLimitRedisRepository(redisClient)

	// Shared transport for the remote functions
	upstreamClient := upstream.NewClient(cfg.Upstream.Timeout, logger)

	contentAPI := upstream.NewContentClient(upstreamClient, cfg.Upstream.ContentURL)
	blogAPI := upstream.NewBlogClient(upstreamClient, cfg.Upstream.MediaURL)
	leadsAPI := upstream.NewLeadsClient(upstreamClient, cfg.Upstream.LeadsURL)
	authAPI := upstream.NewAuthClient(upstreamClient, cfg.Upstream.AuthURL)
	modulesAPI := upstream.NewModulesClient(upstreamClient, cfg.Upstream.ModulesURL)
	messagingAPI := upstream.NewWhatsAppClient(upstreamClient, cfg.Upstream.WhatsAppURL, cfg.Upstream.WhatsAppSenderURL)
	conversionAPI := upstream.NewMetrikaClient(upstreamClient, cfg.Upstream.MetrikaURL)

	// Decorate public reads with cache-aside (choose TTL via config)
	mediaAPI := upstream.NewCachingMediaClient(
		upstream.NewMediaClient(upstreamClient, cfg.Upstream.MediaURL),
		redisCache, cfg.Cache.MediaTTL,
	)
	cachedModulesAPI := upstream.NewCachingModulesClient(modulesAPI, redisCache, cfg.Cache.MediaTTL)

	notifier, err := email.NewNotifier(&cfg.Email, logger)
	if err != nil {
		logger.Fatal("Failed to initialize email notifier:", err)
	}

	// Wire services
	contentStore := services.NewContentStoreService(contentAPI, logger)
	contentEditor := services.NewContentEditorService(contentAPI, contentStore, logger)
	blogService := services.NewBlogService(blogAPI, logger)
	leadService := services.NewLeadService(leadsAPI, conversionAPI, notifier, logger)
	mediaService := services.NewMediaService(mediaAPI, cachedModulesAPI, logger)
	messagingService := services.NewMessagingService(messagingAPI, logger)
	rateLimiterService := services.NewRateLimiterService(redisRateLimitRepo, &cfg.RateLimit, logger)

	// Load the content cache before accepting traffic so the first render
	// already has real values. A failure degrades to defaults.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
	contentStore.Load(loadCtx)
	cancelLoad()

	hcSlice := []ports.HealthChecker{
		health.NewRedisHealthChecker(redisClient),
		health.NewUpstreamHealthChecker("content", cfg.Upstream.ContentURL, &http.Client{Timeout: cfg.Upstream.Timeout}),
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	deps := httpserver.ServerDeps{
		ContentStore:       contentStore,
		ContentEditor:      contentEditor,
		BlogService:        blogService,
		LeadService:        leadService,
		MediaService:       mediaService,
		MessagingService:   messagingService,
		AuthAPI:            authAPI,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
