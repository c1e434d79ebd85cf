package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/bulk"
	"github.com/nvdberg/splithorizon/internal/projection"
	"github.com/nvdberg/splithorizon/internal/repository"
)

// Entity kinds accepted by the bulk transfer endpoints.
const (
	kindScopes   = "scopes"
	kindSubnets  = "subnets"
	kindPolicies = "policies"
	kindRecords  = "records"
)

// Export godoc
// @Summary Export a projection as CSV
// @Description Serializes the current projection of one entity kind to CSV: header row plus one row per entity. Record export needs zone and scope query parameters.
// @Tags transfer
// @Produce text/csv
// @Param kind path string true "Entity kind" Enums(scopes, subnets, policies, records)
// @Param zone query string false "Zone name (records only)"
// @Param scope query string false "Scope name (records only)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /export/{kind} [get]
func (h *Handler) Export(c *gin.Context) {
	table, err := h.projectKind(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := bulk.Export(&buf, table); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	filename := bulk.ExportFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// Import godoc
// @Summary Import a CSV batch
// @Description Reads CSV rows of one entity kind and creates each row independently. A failing row is reported and skipped; the batch always runs to the end and there is no rollback. Record import needs zone and scope query parameters.
// @Tags transfer
// @Accept text/csv
// @Produce json
// @Param kind path string true "Entity kind" Enums(scopes, subnets, policies, records)
// @Param zone query string false "Zone name (records only)"
// @Param scope query string false "Scope name (records only)"
// @Success 200 {object} models.ImportResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /import/{kind} [post]
func (h *Handler) Import(c *gin.Context) {
	ctx := c.Request.Context()
	body := c.Request.Body

	var (
		report *bulk.Report
		err    error
	)
	switch c.Param("kind") {
	case kindScopes:
		report, err = h.importer.ImportScopes(ctx, body)
	case kindSubnets:
		report, err = h.importer.ImportSubnets(ctx, body)
	case kindPolicies:
		report, err = h.importer.ImportPolicies(ctx, body)
	case kindRecords:
		zone, scope := c.Query("zone"), c.Query("scope")
		if zone == "" || scope == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "record import needs zone and scope query parameters"})
			return
		}
		report, err = h.importer.ImportRecords(ctx, zone, scope, body)
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("unknown entity kind %q", c.Param("kind"))})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	resp := models.ImportResponse{Rows: report.Rows, Created: report.Created}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, models.ImportFailure{Line: f.Line, Error: f.Error})
	}
	c.JSON(http.StatusOK, resp)
}

// projectKind builds the projection table for the kind in the URL.
func (h *Handler) projectKind(c *gin.Context) (projection.Table, error) {
	ctx := c.Request.Context()
	switch c.Param("kind") {
	case kindScopes:
		scopes, err := h.repo.ZoneScopes(ctx)
		if err != nil {
			return projection.Table{}, err
		}
		return projection.Scopes(scopes), nil
	case kindSubnets:
		subnets, err := h.repo.ClientSubnets(ctx)
		if err != nil {
			return projection.Table{}, err
		}
		return projection.Subnets(subnets), nil
	case kindPolicies:
		policies, err := h.repo.Policies(ctx)
		if err != nil {
			return projection.Table{}, err
		}
		return projection.Policies(policies), nil
	case kindRecords:
		records, err := h.repo.Records(ctx, c.Query("zone"), c.Query("scope"))
		if err != nil {
			return projection.Table{}, err
		}
		return projection.Records(records), nil
	default:
		return projection.Table{}, fmt.Errorf("%w: unknown entity kind %q", repository.ErrValidation, c.Param("kind"))
	}
}
