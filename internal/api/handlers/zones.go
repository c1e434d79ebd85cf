package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
)

// ListZones godoc
// @Summary List managed zones
// @Description Returns the zones available for split-brain configuration. Reverse-lookup zones and the trust-anchor pseudo-zone are excluded. Zones are read-only here.
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.repo.Zones(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	summaries := make([]models.ZoneSummary, 0, len(zones))
	for _, z := range zones {
		summaries = append(summaries, models.ZoneSummary{Name: z.Name, Kind: z.Kind})
	}
	c.JSON(http.StatusOK, models.ZoneListResponse{Zones: summaries, Count: len(summaries)})
}
