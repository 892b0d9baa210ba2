// Package http wires handlers, middleware, and routes into a Gin engine.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/interfaces/http/handlers"
	"atomichabits/internal/interfaces/http/middleware"
	"atomichabits/internal/shared/config"
	"atomichabits/internal/shared/constants"
	"atomichabits/internal/shared/logger"
)

type Router struct {
	engine          *gin.Engine
	server          *http.Server
	authHandler     *handlers.AuthHandler
	habitHandler    *handlers.HabitHandler
	placeHandler    *handlers.PlaceHandler
	telegramHandler *handlers.TelegramHandler
	authMiddleware  *middleware.AuthMiddleware
	logger          logger.Interface
}

func NewRouter(
	authHandler *handlers.AuthHandler,
	habitHandler *handlers.HabitHandler,
	placeHandler *handlers.PlaceHandler,
	telegramHandler *handlers.TelegramHandler,
	authMiddleware *middleware.AuthMiddleware,
	log logger.Interface,
) *Router {
	return &Router{
		engine:          gin.New(),
		authHandler:     authHandler,
		habitHandler:    habitHandler,
		placeHandler:    placeHandler,
		telegramHandler: telegramHandler,
		authMiddleware:  authMiddleware,
		logger:          log,
	}
}

// SetupRoutes registers middleware and all API routes.
func (r *Router) SetupRoutes(cfg *config.ServerConfig) {
	if cfg.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.Refresh)
	}

	// Public listing stays readable without a token; everything else on
	// /habits requires auth.
	api.GET("/habits/public", r.habitHandler.ListPublic)

	habits := api.Group("/habits")
	habits.Use(r.authMiddleware.RequireAuth())
	{
		habits.POST("", r.habitHandler.Create)
		habits.GET("", r.habitHandler.List)
		habits.GET("/:id", r.habitHandler.Get)
		habits.PATCH("/:id", r.habitHandler.Update)
		habits.DELETE("/:id", r.habitHandler.Delete)
	}

	places := api.Group("/places")
	places.Use(r.authMiddleware.RequireAuth())
	{
		places.POST("", r.placeHandler.Create)
		places.GET("", r.placeHandler.List)
		places.GET("/:id", r.placeHandler.Get)
		places.PUT("/:id", r.placeHandler.Update)
		places.DELETE("/:id", r.placeHandler.Delete)
	}

	telegram := api.Group("/telegram")
	telegram.Use(r.authMiddleware.RequireAuth())
	{
		telegram.GET("/link", r.telegramHandler.GetLink)
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (r *Router) Start(addr string) error {
	r.server = &http.Server{
		Addr:              addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	r.logger.Infow("http server starting", "addr", addr)

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
