package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health godoc
// @Summary Health check
// @Description Returns manager health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Runtime statistics
// @Description Returns process and host statistics
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)
	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.HostMemory = &models.HostMemory{
			TotalMB:     float64(vm.Total) / 1024 / 1024,
			UsedMB:      float64(vm.Used) / 1024 / 1024,
			UsedPercent: vm.UsedPercent,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Audit godoc
// @Summary Recent operation log
// @Description Returns the newest audit entries, most recent first
// @Tags system
// @Produce json
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {object} models.AuditListResponse
// @Failure 404 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /audit [get]
func (h *Handler) Audit(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "operation log is disabled"})
		return
	}
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if n, err := parsePositiveInt(raw); err == nil {
			limit = n
		}
	}
	entries, err := h.audit.RecentOperations(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]models.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.AuditEntryResponse{
			ID:        e.ID,
			Op:        e.Op,
			Kind:      e.Kind,
			Key:       e.Key,
			Outcome:   e.Outcome,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, models.AuditListResponse{Entries: out, Count: len(out)})
}
