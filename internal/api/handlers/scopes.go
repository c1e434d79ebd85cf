package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/projection"
)

// ListScopes godoc
// @Summary List zone scopes
// @Description Returns all split-brain scopes across all managed zones as a projected table. Default scopes are suppressed; zones whose scope enumeration fails are skipped.
// @Tags scopes
// @Produce json
// @Success 200 {object} models.TableResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /scopes [get]
func (h *Handler) ListScopes(c *gin.Context) {
	scopes, err := h.repo.ZoneScopes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	table := projection.Scopes(scopes)
	c.JSON(http.StatusOK, models.TableResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   len(table.Rows),
	})
}

// CreateScope godoc
// @Summary Create a zone scope
// @Tags scopes
// @Accept json
// @Produce json
// @Param zone path string true "Zone name"
// @Param scope body models.ScopeCreateRequest true "Scope to create"
// @Success 201 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/scopes [post]
func (h *Handler) CreateScope(c *gin.Context) {
	var req models.ScopeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.repo.CreateZoneScope(c.Request.Context(), c.Param("zone"), req.Name); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.StatusResponse{Status: "created"})
}

// DeleteScope godoc
// @Summary Delete a zone scope
// @Description Deletes a scope. Contained records are not checked; the server deletes non-empty scopes without complaint.
// @Tags scopes
// @Produce json
// @Param zone path string true "Zone name"
// @Param scope path string true "Scope name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/scopes/{scope} [delete]
func (h *Handler) DeleteScope(c *gin.Context) {
	if err := h.repo.DeleteZoneScope(c.Request.Context(), c.Param("zone"), c.Param("scope")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}
