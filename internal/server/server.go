// Package server exposes the agent's HTTP control surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/agent"
	"github.com/ibeckermayer/judgmentroutingbot/internal/app"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Service is what the control surface drives
type Service interface {
	Status() app.Status
	RegisterAgent(ctx context.Context, name, description string) (*types.Registration, error)
	CreatePost(ctx context.Context, title, text, community string) (*types.Post, error)
}

// Info describes the running build on the index route
type Info struct {
	Name        string
	Description string
	Version     string
}

type handlers struct {
	svc  Service
	info Info
	log  logrus.FieldLogger
}

// NewRouter creates a gin router with the control routes and common middleware.
// m may be nil, in which case /metrics is not served.
func NewRouter(svc Service, info Info, logger logrus.FieldLogger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger))
	router.Use(RecoveryMiddleware(logger))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", m.Handler())
	}

	h := &handlers{svc: svc, info: info, log: logger}
	router.GET("/", h.index)
	router.GET("/health", h.health)
	router.GET("/status", h.status)
	router.POST("/register", h.register)
	router.POST("/post", h.post)
	return router
}

func (h *handlers) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.info.Name,
		"description": h.info.Description,
		"version":     h.info.Version,
		"endpoints": []string{
			"GET /health",
			"GET /status",
			"POST /register",
			"POST /post",
			"GET /metrics",
		},
	})
}

func (h *handlers) health(c *gin.Context) {
	st := h.svc.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"running":     st.Running,
		"initialized": st.Initialized,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status())
}

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	reg, err := h.svc.RegisterAgent(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":           true,
		"api_key":           reg.APIKey,
		"claim_url":         reg.ClaimURL,
		"verification_code": reg.VerificationCode,
	})
}

type postRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	Content   string `json:"content"`
	Community string `json:"submolt"`
}

func (h *handlers) post(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid body: %v", err)})
		return
	}
	text := req.Text
	if text == "" {
		text = req.Content
	}

	post, err := h.svc.CreatePost(c.Request.Context(), req.Title, text, req.Community)
	if err != nil {
		h.fail(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"error":   "post frequency limit reached, try again later",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "post": post})
}

// fail maps service errors onto status codes
func (h *handlers) fail(c *gin.Context, err error) {
	status := http.StatusBadGateway
	var perr *platform.Error
	switch {
	case errors.Is(err, agent.ErrEmptyPost), errors.Is(err, app.ErrMissingName):
		status = http.StatusBadRequest
	case errors.Is(err, app.ErrNotInitialized):
		status = http.StatusServiceUnavailable
	case platform.IsThrottled(err):
		status = http.StatusTooManyRequests
	case errors.As(err, &perr) && perr.StatusCode >= 400 && perr.StatusCode < 500:
		status = perr.StatusCode
	}
	if status >= 500 {
		h.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

// Serve runs an HTTP server for handler until ctx is done, then shuts it
// down gracefully
func Serve(ctx context.Context, port string, handler http.Handler, logger logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("port", port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
