package server

import (
	"io"
	"net/http"

	"contactrelay/internal/api/handlers"
	"contactrelay/internal/api/middleware"
	"contactrelay/internal/config"
	"contactrelay/internal/logging"
	"contactrelay/internal/server/routes"
	"contactrelay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely; the request logger middleware
	// writes through our own logger.
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	// Panics become the same generic 500 envelope every other unexpected
	// failure produces.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("Panic recovered: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "An error occurred processing your request")
	}))

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Init wires global middleware, handlers and routes.
func (s *Server) Init() {
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger(s.logger))
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(s.cfg, s.logger),
		Health:  handlers.NewHealthHandler(),
	}

	routes.Setup(s.router, h, s.logger)
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("Listening on port %s", s.cfg.Port)
	return s.router.Run(":" + s.cfg.Port)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
