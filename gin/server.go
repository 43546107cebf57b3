// Package gin implements the HTTP interface of the service: the search
// endpoint, the raw index endpoint, the health check and the metrics
// scrape route.
package gin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sitenav/sitenav"
	"github.com/sitenav/sitenav/prom"
)

// DefaultAddr is the address the server listens on when none is given.
const DefaultAddr = ":8080"

// Server serves the HTTP API.
type Server struct {
	router  *gin.Engine
	search  sitenav.SearchService
	index   sitenav.IndexService
	logger  *slog.Logger
	metrics *prom.Metrics

	srv *http.Server
}

// NewServer creates a Server around the given services. logger must not
// be nil; metrics may be nil, in which case no counters are recorded.
func NewServer(search sitenav.SearchService, index sitenav.IndexService, logger *slog.Logger, metrics *prom.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router:  gin.New(),
		search:  search,
		index:   index,
		logger:  logger.With("component", "http"),
		metrics: metrics,
	}

	s.router.Use(s.recovery())
	s.router.Use(s.requestLogger())
	s.router.Use(cors())

	s.router.POST("/search", s.handleSearch)
	s.router.GET("/website-index", s.handleWebsiteIndex)
	s.router.GET("/health-check", s.handleHealthCheck)
	s.router.GET("/metrics", gin.WrapH(prom.Handler()))

	return s
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Open starts listening on addr. It blocks until the listener fails or
// Close is called.
func (s *Server) Open(addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("listening", "addr", addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// searchBody is the JSON body of POST /search.
type searchBody struct {
	Query   string `json:"query"`
	Origin  string `json:"origin"`
	Website string `json:"website"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.countSearch("error")
		c.JSON(http.StatusBadRequest, gin.H{
			"results": []sitenav.ScoredSection{},
			"message": "Request body must be valid JSON.",
		})
		return
	}

	req := sitenav.SearchRequest{
		Query:        body.Query,
		Origin:       body.Origin,
		Website:      body.Website,
		OriginHeader: c.GetHeader("Origin"),
		Referrer:     c.Request.Referer(),
	}

	resp, err := s.search.Search(c.Request.Context(), req)
	if err != nil {
		s.countSearch("error")
		s.renderError(c, err)
		return
	}

	s.countSearch(searchOutcome(resp))
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleWebsiteIndex(c *gin.Context) {
	origin := c.Query("origin")
	if origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'origin' is required."})
		return
	}

	sections, err := s.index.Get(c.Request.Context(), origin)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if sections == nil {
		sections = []sitenav.Section{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(sections),
		"sections": sections,
	})
}

func (s *Server) handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"cachedOrigins": s.index.Origins(),
	})
}

// renderError maps a domain error to an HTTP status and a JSON body.
// Internal errors are logged in full but surface opaquely.
func (s *Server) renderError(c *gin.Context, err error) {
	code := sitenav.ErrorCode(err)
	message := sitenav.ErrorMessage(err)
	if code == sitenav.EINTERNAL {
		s.logger.Error("internal error", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		message = "Internal error."
	}
	c.JSON(statusFromCode(code), gin.H{
		"results": []sitenav.ScoredSection{},
		"message": message,
	})
}

func statusFromCode(code string) int {
	switch code {
	case sitenav.EINVALID:
		return http.StatusBadRequest
	case sitenav.ENOTFOUND:
		return http.StatusNotFound
	case sitenav.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) countSearch(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.SearchesTotal.WithLabelValues(outcome).Inc()
}

func searchOutcome(resp *sitenav.SearchResponse) string {
	switch {
	case resp.NeedsClarification:
		return "clarification"
	case len(resp.Results) == 0:
		return "no_match"
	default:
		return "match"
	}
}

// recordRequest feeds the HTTP middleware counters when metrics are
// configured.
func (s *Server) recordRequest(method, path string, status int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	s.metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
