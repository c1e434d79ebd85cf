package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/repository"
)

// ListPolicies godoc
// @Summary List query-resolution policies
// @Description Returns all policies across all managed zones as a projected table. Zones whose policy enumeration fails are skipped. Dangling scope or subnet references are shown as-is.
// @Tags policies
// @Produce json
// @Success 200 {object} models.TableResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /policies [get]
func (h *Handler) ListPolicies(c *gin.Context) {
	policies, err := h.repo.Policies(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	table := projection.Policies(policies)
	c.JSON(http.StatusOK, models.TableResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   len(table.Rows),
	})
}

// CreatePolicy godoc
// @Summary Create a query-resolution policy
// @Description Creates a policy binding an equality subnet match to a zone scope.
// @Tags policies
// @Accept json
// @Produce json
// @Param zone path string true "Zone name"
// @Param policy body models.PolicyCreateRequest true "Policy to create"
// @Success 201 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/policies [post]
func (h *Handler) CreatePolicy(c *gin.Context) {
	var req models.PolicyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	params := repository.PolicyParams{
		Zone:    c.Param("zone"),
		Name:    req.Name,
		Scope:   req.Scope,
		Subnet:  req.Subnet,
		Action:  req.Action,
		Enabled: req.Enabled,
	}
	if err := h.repo.CreatePolicy(c.Request.Context(), params); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.StatusResponse{Status: "created"})
}

// DeletePolicy godoc
// @Summary Delete a query-resolution policy
// @Description Removes a policy; both the zone and the policy name are required.
// @Tags policies
// @Produce json
// @Param zone path string true "Zone name"
// @Param name path string true "Policy name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/policies/{name} [delete]
func (h *Handler) DeletePolicy(c *gin.Context) {
	if err := h.repo.DeletePolicy(c.Request.Context(), c.Param("zone"), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}
