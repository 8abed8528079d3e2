package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/models/dto"
	"github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/middleware"
)

// AdminController handles the admin dashboard routes
type AdminController struct {
	studentService services.StudentService
}

// NewAdminController creates a new AdminController
func NewAdminController(studentService services.StudentService) *AdminController {
	return &AdminController{
		studentService: studentService,
	}
}

// ListStudents retrieves all students
// @Summary List all students
// @Tags admin
// @Produce json
// @Success 200 {object} dto.StudentsResponse
// @Router /api/admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentsResponse{Students: students})
}

// GetStudent retrieves a single student
// @Summary Get a student
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/students/{id} [get]
func (c *AdminController) GetStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{Student: *profile})
}

// UpdateStudent updates a student's writable profile fields
// @Summary Update a student
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Profile fields"
// @Success 200 {object} dto.UpdateStudentResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/students/{id} [put]
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	profile, err := c.studentService.UpdateStudent(ctx.Request.Context(), studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateStudentResponse{
		Message: "Student updated successfully",
		Student: *profile,
	})
}

// GetComprehensiveDetails retrieves the full admin view of a student
// @Summary Get comprehensive student details
// @Tags admin
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.ComprehensiveStudentResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /api/admin/students/{id}/comprehensive [get]
func (c *AdminController) GetComprehensiveDetails(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	details, err := c.studentService.GetComprehensiveDetails(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// ListSchools retrieves all schools
// @Summary List all schools
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SchoolsResponse
// @Router /api/admin/schools [get]
func (c *AdminController) ListSchools(ctx *gin.Context) {
	schools, err := c.studentService.ListSchools(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SchoolsResponse{Schools: schools})
}

// GetAcademicRecords retrieves a student's records by query parameter
// @Summary Look up academic records
// @Tags admin
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.RecordsResponse
// @Failure 400 {object} dto.ErrorResponse "Missing studentId parameter"
// @Failure 404 {object} dto.ErrorResponse "No records for this student"
// @Router /api/admin/academic-records [get]
func (c *AdminController) GetAcademicRecords(ctx *gin.Context) {
	studentIDStr := ctx.Query("studentId")
	if studentIDStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("studentId query parameter is required"))
		return
	}

	studentID, err := strconv.ParseInt(studentIDStr, 10, 64)
	if err != nil || studentID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid studentId parameter"))
		return
	}

	records, err := c.studentService.GetAcademicRecordsStrict(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecordsResponse{Records: records})
}
