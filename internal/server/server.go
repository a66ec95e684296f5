// Package server assembles the router and owns the HTTP lifecycle.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/config"
	"github.com/pantryplate/backend/internal/api"
	"github.com/pantryplate/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	log    *logrus.Logger
}

// Handlers carries everything the router mounts.
type Handlers struct {
	Recipes     *api.RecipeHandler
	Ingredients *api.IngredientHandler
	Images      *api.ImageHandler
	Health      *api.HealthHandler
	RateLimiter *middleware.RateLimiter
}

// New builds the router and server from the loaded configuration.
func New(cfg *config.Config, h Handlers, log *logrus.Logger) *Server {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	apiGroup := router.Group("/api")
	h.Recipes.RegisterRoutes(apiGroup)
	h.Ingredients.RegisterRoutes(apiGroup, h.RateLimiter)
	h.Images.RegisterRoutes(apiGroup)
	router.GET("/health", h.Health.Check)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
		log: log,
	}
}

// Router exposes the underlying engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithField("addr", s.http.Addr).Info("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
