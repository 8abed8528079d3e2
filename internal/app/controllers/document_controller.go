package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/middleware"
)

// DocumentController handles document upload and management routes
type DocumentController struct {
	documentService services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// List retrieves a student's documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.DocumentsResponse
// @Router /api/students/{id}/documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	documents, err := c.documentService.List(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DocumentsResponse{Documents: documents})
}

// Upload stores a new document for a student
// @Summary Upload a document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Student ID"
// @Param file formData file true "Document file"
// @Param documentType formData string false "Document type label"
// @Success 200 {object} dto.UploadDocumentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or disallowed type"
// @Router /api/students/{id}/documents/upload [post]
func (c *DocumentController) Upload(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No file provided"))
		return
	}

	documentType := ctx.PostForm("documentType")

	document, err := c.documentService.Upload(ctx.Request.Context(), studentID, documentType, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadDocumentResponse{
		Message:  "Document uploaded successfully",
		Document: *document,
	})
}

// Delete removes a student's document and its stored file
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path int true "Student ID"
// @Param docId path int true "Document ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /api/students/{id}/documents/{docId} [delete]
func (c *DocumentController) Delete(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	documentID, ok := parseIDParam(ctx, "docId")
	if !ok {
		return
	}

	if err := c.documentService.Delete(ctx.Request.Context(), documentID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Document deleted successfully"})
}
