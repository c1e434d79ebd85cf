package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/record"
)

// ListRecords godoc
// @Summary List records of a zone scope
// @Description Returns the records of one (zone, scope) pair as a projected table; the data column is the per-type display encoding.
// @Tags records
// @Produce json
// @Param zone path string true "Zone name"
// @Param scope path string true "Scope name"
// @Success 200 {object} models.TableResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/scopes/{scope}/records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	records, err := h.repo.Records(c.Request.Context(), c.Param("zone"), c.Param("scope"))
	if err != nil {
		h.fail(c, err)
		return
	}
	table := projection.Records(records)
	c.JSON(http.StatusOK, models.TableResponse{
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   len(table.Rows),
	})
}

// CreateRecord godoc
// @Summary Create a resource record
// @Description Creates a record in the given scope. Only A, CNAME, TXT and PTR are supported; other types are rejected before the DNS server is contacted.
// @Tags records
// @Accept json
// @Produce json
// @Param zone path string true "Zone name"
// @Param scope path string true "Scope name"
// @Param record body models.RecordCreateRequest true "Record to create"
// @Success 201 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/scopes/{scope}/records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	var req models.RecordCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	err := h.repo.CreateRecord(c.Request.Context(),
		c.Param("zone"), c.Param("scope"), req.Name, record.Type(req.Type), req.Data)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.StatusResponse{Status: "created"})
}

// DeleteRecord godoc
// @Summary Delete a resource record
// @Description Removes a record identified by the name and type query parameters. A, AAAA, CNAME, TXT, PTR and NS additionally require the exact data string; other types are removed by name and type alone.
// @Tags records
// @Produce json
// @Param zone path string true "Zone name"
// @Param scope path string true "Scope name"
// @Param name query string true "Record name"
// @Param type query string true "Record type"
// @Param data query string false "Exact record data (required for data-qualified types)"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{zone}/scopes/{scope}/records [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	err := h.repo.DeleteRecord(c.Request.Context(),
		c.Param("zone"), c.Param("scope"),
		c.Query("name"), record.Type(c.Query("type")), c.Query("data"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}
