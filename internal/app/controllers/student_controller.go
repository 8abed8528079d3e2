package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/middleware"
)

// StudentController handles the student-facing profile routes
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseIDParam parses a path parameter that must be a positive integer.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// GetProfile retrieves a student's profile
// @Summary Get student profile
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/students/{id} [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{Profile: *profile})
}

// GetAcademicRecords retrieves a student's academic records
// @Summary Get academic records
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.AcademicRecordsResponse
// @Router /api/students/{id}/academic-records [get]
func (c *StudentController) GetAcademicRecords(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	records, err := c.studentService.GetAcademicRecords(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AcademicRecordsResponse{AcademicRecords: records})
}

// GetSchemes retrieves a student's scheme enrollment history
// @Summary Get scheme history
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SchemesResponse
// @Router /api/students/{id}/schemes [get]
func (c *StudentController) GetSchemes(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	schemes, err := c.studentService.GetSchemes(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SchemesResponse{Schemes: schemes})
}
