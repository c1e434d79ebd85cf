package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/projection"
)

// ListSubnets godoc
// @Summary List client subnets
// @Description Returns all client subnets as a projected table with comma-joined prefix lists.
// @Tags subnets
// @Produce json
// @Success 200 {object} models.TableResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /subnets [get]
func (h *Handler) ListSubnets(c *gin.Context) {
	subnets, err := h.repo.ClientSubnets(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	table := projection.Subnets(subnets)
	c.JSON(http.StatusOK, models.TableResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   len(table.Rows),
	})
}

// CreateSubnet godoc
// @Summary Create a client subnet
// @Description Creates a named subnet from comma-separated IPv4 and IPv6 prefix lists. At least one prefix is required.
// @Tags subnets
// @Accept json
// @Produce json
// @Param subnet body models.SubnetCreateRequest true "Subnet to create"
// @Success 201 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /subnets [post]
func (h *Handler) CreateSubnet(c *gin.Context) {
	var req models.SubnetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	subnet := mgmt.ClientSubnet{
		Name: req.Name,
		IPv4: projection.SplitPrefixes(req.IPv4),
		IPv6: projection.SplitPrefixes(req.IPv6),
	}
	if err := h.repo.CreateClientSubnet(c.Request.Context(), subnet); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.StatusResponse{Status: "created"})
}

// DeleteSubnet godoc
// @Summary Delete a client subnet
// @Description Deletes a subnet by name. Policies referencing it are left dangling.
// @Tags subnets
// @Produce json
// @Param name path string true "Subnet name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /subnets/{name} [delete]
func (h *Handler) DeleteSubnet(c *gin.Context) {
	if err := h.repo.DeleteClientSubnet(c.Request.Context(), c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}
