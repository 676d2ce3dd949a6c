package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/justsurfingit/ats-api/internal/config"
	"github.com/justsurfingit/ats-api/internal/database"
	"github.com/justsurfingit/ats-api/internal/handlers"
	"github.com/justsurfingit/ats-api/internal/middleware"
)

// NewRouter builds the gin engine with every route of the API.
func NewRouter(
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	provider *database.Provider,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/", handlers.HealthCheck)
	r.GET("/ready", handlers.Readiness(provider))

	// Job Routes
	r.GET("/jobs", jobHandler.ListJobs)
	r.GET("/jobs/:id", jobHandler.GetJob)
	r.POST("/jobs", jobHandler.CreateJob)

	// Application Routes
	r.POST("/apply", applicationHandler.Apply)
	r.GET("/applications", applicationHandler.ListApplications)

	r.NoRoute(handlers.NotFound)

	return r
}

// Server owns the http.Server so it can be shut down gracefully.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New wraps router so every request gets a server span; service spans nest
// under it.
func New(cfg *config.Config, router *gin.Engine, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           otelhttp.NewHandler(router, cfg.OTELServiceName),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start binds the listener synchronously, so a taken port is reported to the
// caller, then serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	s.logger.Info("Server starting", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Server shutting down")
	return s.httpServer.Shutdown(ctx)
}
