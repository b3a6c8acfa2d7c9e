// Package server exposes the scraping client as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/famomatic/ytscrape/client"
)

// Scraper is the subset of *client.Client the API serves.
type Scraper interface {
	Search(ctx context.Context, keyword string, opts client.SearchOptions) (*client.SearchResult, error)
	NextPage(ctx context.Context, next client.ContinuationState, includePlaylists bool, limit int) (*client.SearchResult, error)
	GetPlaylist(ctx context.Context, input string, limit int) (*client.PlaylistResult, error)
	GetChannel(ctx context.Context, input string) ([]client.ChannelTab, error)
	GetVideoDetails(ctx context.Context, input string) (*client.VideoDetails, error)
}

type Options struct {
	// MaxLimit caps per-request limits; 0 disables the cap.
	MaxLimit int
	Logger   *log.Entry
	// Sentry attaches a sentry hub to each request and reports upstream
	// failures to it. sentry.Init must have been called.
	Sentry bool
}

type Server struct {
	scraper  Scraper
	maxLimit int
	logger   *log.Entry
	router   *gin.Engine
}

func New(scraper Scraper, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "server")
	}
	s := &Server{
		scraper:  scraper,
		maxLimit: opts.MaxLimit,
		logger:   logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	if opts.Sentry {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.GET("/healthz", s.health)
	router.GET("/search", s.search)
	router.POST("/search/next", s.nextPage)
	router.GET("/playlists/:id", s.playlist)
	router.GET("/channels/:id", s.channel)
	router.GET("/videos/:id", s.video)
	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(logger *log.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := logger.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) search(c *gin.Context) {
	limit, ok := s.limit(c, c.Query("limit"))
	if !ok {
		return
	}
	res, err := s.scraper.Search(c.Request.Context(), c.Query("q"), client.SearchOptions{
		IncludePlaylists: queryBool(c, "playlists"),
		Limit:            limit,
		Type:             c.Query("type"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type nextPageRequest struct {
	Next      client.ContinuationState `json:"next"`
	Playlists bool                     `json:"playlists"`
	Limit     int                      `json:"limit"`
}

func (s *Server) nextPage(c *gin.Context) {
	var req nextPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, &client.InvalidInputDetailError{Input: "body", Reason: err.Error()})
		return
	}
	limit, ok := s.limit(c, strconv.Itoa(req.Limit))
	if !ok {
		return
	}
	res, err := s.scraper.NextPage(c.Request.Context(), req.Next, req.Playlists, limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) playlist(c *gin.Context) {
	limit, ok := s.limit(c, c.Query("limit"))
	if !ok {
		return
	}
	res, err := s.scraper.GetPlaylist(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) channel(c *gin.Context) {
	tabs, err := s.scraper.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tabs": tabs})
}

func (s *Server) video(c *gin.Context) {
	details, err := s.scraper.GetVideoDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// limit parses a limit parameter and applies the server cap. An absent
// limit means the cap (or unlimited when there is none).
func (s *Server) limit(c *gin.Context, raw string) (int, bool) {
	limit := 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.fail(c, &client.InvalidInputDetailError{Input: raw, Reason: "invalid_limit"})
			return 0, false
		}
		limit = n
	}
	if s.maxLimit > 0 && (limit == 0 || limit > s.maxLimit) {
		limit = s.maxLimit
	}
	return limit, true
}

func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

func (s *Server) fail(c *gin.Context, err error) {
	category := client.ClassifyError(err)
	status := statusFor(category)
	if status >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("category", category).Warn("upstream request failed")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{
		"category": category,
		"message":  err.Error(),
	}})
}

func statusFor(category client.ErrorCategory) int {
	switch category {
	case client.ErrorCategoryInvalidInput, client.ErrorCategoryMissingToken:
		return http.StatusBadRequest
	case client.ErrorCategoryNoMorePages, client.ErrorCategoryInvalidPlaylist:
		return http.StatusNotFound
	case client.ErrorCategoryNetwork, client.ErrorCategoryExtraction, client.ErrorCategoryInvalidStructure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
