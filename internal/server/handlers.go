package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gopherchem/isospec/generator"
	"github.com/gopherchem/isospec/internal/errorsx"
	"github.com/gopherchem/isospec/internal/logging"
	"github.com/gopherchem/isospec/molecule"
)

type handler struct {
	deps Deps
}

// configLine is one line of the newline-delimited JSON response body.
type configLine struct {
	LProb float64 `json:"l_prob"`
	Mass  float64 `json:"mass"`
	EProb float64 `json:"eprob"`
	Conf  []int32 `json:"conf"`
}

func writeConfigLine(enc *json.Encoder, g generator.Generator, buf []int32) error {
	g.WriteConfSignature(buf)
	return enc.Encode(configLine{
		LProb: g.LProb(),
		Mass:  g.Mass(),
		EProb: g.EProb(),
		Conf:  append([]int32(nil), buf...),
	})
}

// confSignatureLen must be measured before a Descriptor is handed to a
// generator constructor — those constructors consume the Descriptor
// (molecule.Descriptor's move semantics, DESIGN.md), after which its
// accessors panic.
func confSignatureLen(d *molecule.Descriptor) int {
	n := 0
	for _, dim := range d.IsotopeNumbers() {
		n += dim
	}
	return n
}

func (h *handler) buildDescriptor(c *gin.Context, formula string) (*molecule.Descriptor, bool) {
	d, err := molecule.NewFromFormula(formula)
	if err != nil {
		c.JSON(errorsx.HTTPStatus(err), gin.H{"error": err.Error()})
		return nil, false
	}
	return d, true
}

func startStream(c *gin.Context) *json.Encoder {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "application/x-ndjson")
	return json.NewEncoder(c.Writer)
}

type orderedRequest struct {
	Formula string `json:"formula" binding:"required"`
	Limit   int    `json:"limit"`
}

func (h *handler) ordered(c *gin.Context) {
	var req orderedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 1000
	}

	d, ok := h.buildDescriptor(c, req.Formula)
	if !ok {
		return
	}

	log := requestLogger(c, h.deps.Logger)
	log.Info("ordered enumeration started", logging.String("formula", req.Formula))
	started := time.Now()

	buf := make([]int32, confSignatureLen(d))
	g := generator.NewOrdered(d, h.deps.Config.TabSize, h.deps.Config.HashSize)

	enc := startStream(c)
	count := 0
	for count < req.Limit && g.Advance() {
		if err := writeConfigLine(enc, g, buf); err != nil {
			break
		}
		count++
	}
	c.Writer.Flush()

	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveRun("ordered", count, time.Since(started))
	}
}

type thresholdRequest struct {
	Formula   string  `json:"formula" binding:"required"`
	Threshold float64 `json:"threshold" binding:"required"`
	Absolute  bool    `json:"absolute"`
}

func (h *handler) threshold(c *gin.Context) {
	var req thresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, ok := h.buildDescriptor(c, req.Formula)
	if !ok {
		return
	}

	log := requestLogger(c, h.deps.Logger)
	log.Info("threshold enumeration started", logging.String("formula", req.Formula), logging.Float64("threshold", req.Threshold))
	started := time.Now()

	buf := make([]int32, confSignatureLen(d))
	g, err := generator.NewThreshold(d, req.Threshold, req.Absolute, h.deps.Config.TabSize, h.deps.Config.HashSize)
	if err != nil {
		c.JSON(errorsx.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	enc := startStream(c)
	count := 0
	for g.Advance() {
		if err := writeConfigLine(enc, g, buf); err != nil {
			break
		}
		count++
	}
	c.Writer.Flush()

	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveRun("threshold", count, time.Since(started))
	}
}

type layeredRequest struct {
	Formula    string  `json:"formula" binding:"required"`
	Delta      float64 `json:"delta"`
	TargetProb float64 `json:"target_prob"`
}

func (h *handler) layered(c *gin.Context) {
	var req layeredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Delta == 0 {
		req.Delta = h.deps.Config.Delta
	}

	d, ok := h.buildDescriptor(c, req.Formula)
	if !ok {
		return
	}

	log := requestLogger(c, h.deps.Logger)
	log.Info("layered enumeration started", logging.String("formula", req.Formula))
	started := time.Now()

	buf := make([]int32, confSignatureLen(d))
	g := generator.NewLayered(d, req.Delta, h.deps.Config.TabSize, h.deps.Config.HashSize)
	if req.TargetProb > 0 {
		g.SetTargetProbability(req.TargetProb)
	}

	enc := startStream(c)
	count := 0
	for g.Advance() {
		if err := writeConfigLine(enc, g, buf); err != nil {
			break
		}
		count++
	}
	c.Writer.Flush()

	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveRun("layered", count, time.Since(started))
	}
}
