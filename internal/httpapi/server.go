// Package httpapi serves task cards over HTTP: rendered descriptions,
// progress, the context menu and the column and board actions.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/thenoetrevino/taskcard/internal/app"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP surface of an App
type Server struct {
	app     *app.App
	echo    *echo.Echo
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a server with every route registered
func NewServer(a *app.App, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{app: a, echo: e, metrics: NewMetrics(), logger: logger}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Debug("request", attrs...)
			return nil
		},
	}))

	s.Register(e)
	return s
}

// Register wires up all routes on e
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.healthz)
	e.GET("/metrics", s.getMetrics)

	tasks := e.Group("/tasks/:id")
	tasks.GET("/description", s.getDescription)
	tasks.GET("/progress", s.getProgress)
	tasks.GET("/menu", s.getMenu)
	tasks.POST("/column", s.postColumn)
	tasks.POST("/copy", s.postCopy)
	tasks.POST("/move", s.postMove)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Metrics returns the server counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context, addr string) error {
	go s.watchEvents(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", addr)
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// watchEvents counts and logs bus events until ctx is done or the bus closes
func (s *Server) watchEvents(ctx context.Context) {
	ch, cancel := s.app.Bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			s.metrics.EventsObserved.Add(1)
			s.logger.Info("board event", "type", event.Type, "board_id", event.BoardID, "sequence_id", event.SequenceID)
		}
	}
}

func (s *Server) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (s *Server) getMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.Snapshot())
}
