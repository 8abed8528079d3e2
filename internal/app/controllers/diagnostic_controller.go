package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/middleware"
)

// DiagnosticController handles the read-only table introspection routes
type DiagnosticController struct {
	diagnosticService services.DiagnosticService
}

// NewDiagnosticController creates a new DiagnosticController
func NewDiagnosticController(diagnosticService services.DiagnosticService) *DiagnosticController {
	return &DiagnosticController{
		diagnosticService: diagnosticService,
	}
}

// ListTables lists the readable application tables
// @Summary List application tables
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.TablesResponse
// @Router / [get]
func (c *DiagnosticController) ListTables(ctx *gin.Context) {
	tables, err := c.diagnosticService.ListTables(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TablesResponse{Tables: tables})
}

// DumpTable returns every row of an allowlisted table, keyed by its name
// @Summary Dump a table
// @Tags diagnostics
// @Produce json
// @Param name path string true "Table name"
// @Success 200 {object} object
// @Failure 400 {object} dto.ErrorResponse "Table not in the allowlist"
// @Router /tables/{name} [get]
func (c *DiagnosticController) DumpTable(ctx *gin.Context) {
	name := ctx.Param("name")
	rows, err := c.diagnosticService.DumpTable(ctx.Request.Context(), name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{name: rows})
}

// Ping is a liveness probe
// @Summary Liveness probe
// @Tags diagnostics
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /ping [get]
func Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "pong"})
}
