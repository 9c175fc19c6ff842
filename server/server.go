// Package server exposes the repository over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/scieloorg/oai-pmh/repository"
)

const (
	ContentTypeXML  = "text/xml; charset=utf-8"
	outcomeOK       = "ok"
	outcomeInternal = "internal"

	// MaxFormBodyBytes is the largest POST body accepted.
	MaxFormBodyBytes = 64 * 1024
)

type Server struct {
	Echo    *echo.Echo
	Metrics *Metrics

	repo   *repository.Repository
	logger *logging.Logger
}

// NewServer routes OAI-PMH requests on "/" and on oaiPath, when that
// differs, so the service can answer on the path of its base URL.
func NewServer(repo *repository.Repository, logger *logging.Logger, oaiPath string) *Server {
	s := &Server{
		Echo:    echo.New(),
		Metrics: NewMetrics(),
		repo:    repo,
		logger:  logger,
	}
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.Use(middleware.Recover())

	paths := []string{"/"}
	if oaiPath != "" && oaiPath != "/" {
		paths = append(paths, oaiPath)
	}
	for _, path := range paths {
		s.Echo.GET(path, s.handleOAI)
		s.Echo.POST(path, s.handleOAI)
	}
	s.Echo.GET("/healthz", s.handleHealth)
	s.Echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{})))
	return s
}

// Start blocks until the server stops. It returns nil after Shutdown.
func (s *Server) Start(port int) error {
	s.logger.Infof("Listening on port %d", port)
	err := s.Echo.Start(fmt.Sprintf(":%d", port))
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// handleOAI answers GET requests from the query string and POST
// requests from their url-encoded body.
func (s *Server) handleOAI(c echo.Context) error {
	started := time.Now()
	query, err := requestQuery(c.Request())
	if err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := s.repo.Handle(c.Request().Context(), query)
	if err != nil {
		s.Metrics.Record("", outcomeInternal, time.Since(started).Seconds())
		s.logger.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.String(), err)
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	outcome := outcomeOK
	if resp.ErrorCode != "" {
		outcome = resp.ErrorCode
	}
	s.Metrics.Record(resp.Verb, outcome, time.Since(started).Seconds())
	return c.Blob(http.StatusOK, ContentTypeXML, resp.Body)
}

func requestQuery(req *http.Request) (string, error) {
	if req.Method != http.MethodPost {
		return req.URL.RawQuery, nil
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, MaxFormBodyBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > MaxFormBodyBytes {
		return "", echo.ErrStatusRequestEntityTooLarge
	}
	if len(body) == 0 {
		return req.URL.RawQuery, nil
	}
	return string(body), nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
