// Package handlers implements the REST API endpoint handlers for the
// splithorizon manager.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime statistics (uptime, memory, host memory)
//   - GET /api/v1/audit - Recent operation log entries
//
// Entities:
//   - GET /api/v1/zones - List managed zones
//   - GET /api/v1/scopes - List zone scopes across all zones
//   - POST /api/v1/zones/:zone/scopes - Create a zone scope
//   - DELETE /api/v1/zones/:zone/scopes/:scope - Delete a zone scope
//   - GET/POST /api/v1/subnets, DELETE /api/v1/subnets/:name - Client subnets
//   - GET /api/v1/policies - List policies across all zones
//   - POST /api/v1/zones/:zone/policies - Create a policy
//   - DELETE /api/v1/zones/:zone/policies/:name - Delete a policy
//   - GET/POST/DELETE /api/v1/zones/:zone/scopes/:scope/records - Records
//
// Bulk transfer:
//   - GET /api/v1/export/:kind - Download the current projection as CSV
//   - POST /api/v1/import/:kind - Import a CSV batch (per-row isolation)
//
// @title SplitHorizon Management API
// @version 1.0
// @description REST API for managing split-brain DNS configuration: zone scopes, client subnets, query-resolution policies and scoped resource records.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8053
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/models"
	"github.com/nvdberg/splithorizon/internal/bulk"
	"github.com/nvdberg/splithorizon/internal/config"
	"github.com/nvdberg/splithorizon/internal/database"
	"github.com/nvdberg/splithorizon/internal/mgmt"
	"github.com/nvdberg/splithorizon/internal/record"
	"github.com/nvdberg/splithorizon/internal/repository"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	repo      *repository.Repository
	importer  *bulk.Importer
	audit     *database.DB
	logger    *slog.Logger
	startTime time.Time
}

// New creates a Handler. audit may be nil when the operation log is
// disabled.
func New(cfg *config.Config, repo *repository.Repository, audit *database.DB, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		repo:      repo,
		importer:  bulk.NewImporter(repo),
		audit:     audit,
		logger:    logger,
		startTime: time.Now(),
	}
}

// fail translates a repository error into an HTTP response. Validation
// and unsupported-type failures are the caller's fault; everything
// else is an upstream management API failure.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, repository.ErrValidation),
		errors.Is(err, record.ErrUnsupportedType),
		errors.Is(err, record.ErrInvalidData):
		status = http.StatusBadRequest
	case errors.Is(err, mgmt.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
