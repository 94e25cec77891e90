package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/scenastudio/site-backend/internal/core/ports"
	customMiddleware "github.com/scenastudio/site-backend/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type ServerDeps struct {
	ContentStore       ports.ContentStore
	ContentEditor      ports.ContentEditor
	BlogService        ports.BlogService
	LeadService        ports.LeadService
	MediaService       ports.MediaService
	MessagingService   ports.MessagingService
	AuthAPI            ports.AuthAPI
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	contentStore   ports.ContentStore
	contentEditor  ports.ContentEditor
	blogSvc        ports.BlogService
	leadSvc        ports.LeadService
	mediaSvc       ports.MediaService
	messagingSvc   ports.MessagingService
	authAPI        ports.AuthAPI
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		contentStore:   deps.ContentStore,
		contentEditor:  deps.ContentEditor,
		blogSvc:        deps.BlogService,
		leadSvc:        deps.LeadService,
		mediaSvc:       deps.MediaService,
		messagingSvc:   deps.MessagingService,
		authAPI:        deps.AuthAPI,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
