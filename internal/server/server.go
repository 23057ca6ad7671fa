// Package server exposes the three joint generator disciplines
// (ordered, threshold, layered) over HTTP using gin, streaming results as
// newline-delimited JSON so a client can start consuming configurations
// before enumeration finishes.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gopherchem/isospec/internal/config"
	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/internal/metrics"
)

// Deps are the collaborators every handler needs.
type Deps struct {
	Config  config.GeneratorConfig
	Logger  logging.Logger
	Metrics *metrics.Metrics
}

// NewRouter builds the gin engine serving the isospec HTTP API.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(runIDMiddleware(deps.Logger))

	if deps.Metrics != nil {
		h := deps.Metrics.Handler()
		r.GET("/metrics", func(c *gin.Context) {
			h.ServeHTTP(c.Writer, c.Request)
		})
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &handler{deps: deps}
	v1 := r.Group("/v1/molecules")
	{
		v1.POST("/ordered", h.ordered)
		v1.POST("/threshold", h.threshold)
		v1.POST("/layered", h.layered)
	}

	return r
}

// runIDKey is the gin.Context key holding this request's run ID.
const runIDKey = "run_id"

func runIDMiddleware(base logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		runID := uuid.NewString()
		c.Set(runIDKey, runID)

		started := time.Now()
		c.Next()

		base.Info("request handled",
			logging.String("run_id", runID),
			logging.String("path", c.FullPath()),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("elapsed", time.Since(started)),
		)
	}
}

func requestLogger(c *gin.Context, base logging.Logger) logging.Logger {
	runID, _ := c.Get(runIDKey)
	id, _ := runID.(string)
	return base.With(logging.String("run_id", id))
}
