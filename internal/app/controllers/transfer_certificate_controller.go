package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/middleware"
)

// TransferCertificateController handles both the student-facing application
// routes and the admin processing routes.
type TransferCertificateController struct {
	certificateService services.TransferCertificateService
}

// NewTransferCertificateController creates a new TransferCertificateController
func NewTransferCertificateController(certificateService services.TransferCertificateService) *TransferCertificateController {
	return &TransferCertificateController{
		certificateService: certificateService,
	}
}

// Apply files a new transfer certificate application
// @Summary Apply for a transfer certificate
// @Tags transfer-certificates
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.ApplyCertificateRequest true "Application details"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Router /api/students/{id}/transfer-certificate [post]
func (c *TransferCertificateController) Apply(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApplyCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	certificate, err := c.certificateService.Apply(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateResponse{
		Message:             "Transfer certificate application submitted",
		TransferCertificate: *certificate,
	})
}

// ListForStudent retrieves a student's applications
// @Summary List a student's transfer certificates
// @Tags transfer-certificates
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.CertificatesResponse
// @Router /api/students/{id}/transfer-certificate [get]
func (c *TransferCertificateController) ListForStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	certificates, err := c.certificateService.ListForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificatesResponse{TransferCertificates: certificates})
}

// DeleteByStudent withdraws a pending application
// @Summary Withdraw a pending application
// @Tags transfer-certificates
// @Produce json
// @Param id path int true "Student ID"
// @Param tcId path int true "Transfer certificate ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Application is not pending"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /api/students/{id}/transfer-certificate/{tcId} [delete]
func (c *TransferCertificateController) DeleteByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	tcID, ok := parseIDParam(ctx, "tcId")
	if !ok {
		return
	}

	if err := c.certificateService.DeleteByStudent(ctx.Request.Context(), tcID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transfer certificate application deleted"})
}

// ListAll retrieves every application for the admin dashboard
// @Summary List all transfer certificates
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CertificatesResponse
// @Router /api/admin/transfer-certificates [get]
func (c *TransferCertificateController) ListAll(ctx *gin.Context) {
	certificates, err := c.certificateService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificatesResponse{TransferCertificates: certificates})
}

// UpdateStatus processes an application
// @Summary Approve or reject an application
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Transfer certificate ID"
// @Param request body dto.UpdateCertificateRequest true "Processing decision"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /api/admin/transfer-certificates/{id} [patch]
func (c *TransferCertificateController) UpdateStatus(ctx *gin.Context) {
	tcID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	certificate, err := c.certificateService.UpdateStatus(ctx.Request.Context(), tcID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateResponse{
		Message:             "Transfer certificate updated",
		TransferCertificate: *certificate,
	})
}

// DeleteByAdmin removes an application regardless of status
// @Summary Delete a transfer certificate
// @Tags admin
// @Produce json
// @Param id path int true "Transfer certificate ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Router /api/admin/transfer-certificates/{id} [delete]
func (c *TransferCertificateController) DeleteByAdmin(ctx *gin.Context) {
	tcID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.certificateService.DeleteByAdmin(ctx.Request.Context(), tcID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transfer certificate deleted"})
}
