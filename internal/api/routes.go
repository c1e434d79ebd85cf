package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/handlers"
	"github.com/nvdberg/splithorizon/internal/api/middleware"
	"github.com/nvdberg/splithorizon/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/nvdberg/splithorizon/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// One user action at a time; the configuration model is not
	// concurrency-safe across the management API.
	api.Use(middleware.SerializeRequests())

	// Optional API key protection.
	if cfg != nil && cfg.Server.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.Server.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/audit", h.Audit)

	api.GET("/zones", h.ListZones)

	api.GET("/scopes", h.ListScopes)
	api.POST("/zones/:zone/scopes", h.CreateScope)
	api.DELETE("/zones/:zone/scopes/:scope", h.DeleteScope)

	api.GET("/subnets", h.ListSubnets)
	api.POST("/subnets", h.CreateSubnet)
	api.DELETE("/subnets/:name", h.DeleteSubnet)

	api.GET("/policies", h.ListPolicies)
	api.POST("/zones/:zone/policies", h.CreatePolicy)
	api.DELETE("/zones/:zone/policies/:name", h.DeletePolicy)

	api.GET("/zones/:zone/scopes/:scope/records", h.ListRecords)
	api.POST("/zones/:zone/scopes/:scope/records", h.CreateRecord)
	api.DELETE("/zones/:zone/scopes/:scope/records", h.DeleteRecord)

	api.GET("/export/:kind", h.Export)
	api.POST("/import/:kind", h.Import)
}
