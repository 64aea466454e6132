package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/socwire-project/socwire/internal/message"
	"github.com/socwire-project/socwire/internal/util"
)

type decodeRequest struct {
	Line string `json:"line" binding:"required"`
}

type renderRequest struct {
	Rendering string `json:"rendering" binding:"required"`
}

type messageView struct {
	TypeID    int    `json:"type"`
	Kind      string `json:"kind"`
	Game      string `json:"game,omitempty"`
	Line      string `json:"line"`
	Rendering string `json:"rendering"`
}

func viewOf(m message.Message) messageView {
	v := messageView{
		TypeID:    m.Type(),
		Kind:      message.KindName(m.Type()),
		Line:      m.Command(),
		Rendering: m.String(),
	}
	if gm, ok := m.(message.ForGame); ok {
		v.Game = gm.GameName()
	}
	return v
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleDecode decodes one wire line and returns its fields and
// rendering.
func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line is required"})
		return
	}

	m := message.Decode(req.Line)
	if m == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "line did not decode to a known message",
			"line":  req.Line,
		})
		return
	}

	c.JSON(http.StatusOK, viewOf(m))
}

// handleRender parses a log rendering back into a message and returns
// its wire line.
func (s *Server) handleRender(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rendering is required"})
		return
	}

	m, err := message.ParseRendering(req.Rendering)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, viewOf(m))
}

// handleMessages queries the message log. Filters: game, type, limit.
func (s *Server) handleMessages(c *gin.Context) {
	game := c.Query("game")
	typeID, _ := strconv.Atoi(c.DefaultQuery("type", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	recs, err := s.store.Recent(game, typeID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "message log query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(recs),
		"messages": recs,
	})
}

// handleStats returns the in-memory decode counters and the store's
// per-kind totals.
func (s *Server) handleStats(c *gin.Context) {
	snap := s.stats.Snapshot()

	stored, err := s.store.Total()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "message log query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       snap,
		"stored_rows": stored,
	})
}

// handleStatus returns host-level health.
func (s *Server) handleStatus(c *gin.Context) {
	cpuPct, _ := util.GetCPUUsage()
	memUsage, _ := util.GetMemoryUsage()
	diskUsage, _ := util.GetDiskUsage(".")

	c.JSON(http.StatusOK, gin.H{
		"system":      util.GetSystemInfo(),
		"cpu_percent": cpuPct,
		"memory":      memUsage,
		"disk":        diskUsage,
	})
}
