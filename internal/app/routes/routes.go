package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gmps/schooladmin/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	documentController *controllers.DocumentController,
	certificateController *controllers.TransferCertificateController,
	adminController *controllers.AdminController,
	diagnosticController *controllers.DiagnosticController,
) {
	// Diagnostic routes at the root
	router.GET("/", diagnosticController.ListTables)
	router.GET("/tables/:name", diagnosticController.DumpTable)
	router.GET("/ping", controllers.Ping)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	students := api.Group("/students")
	{
		students.GET("/:id", studentController.GetProfile)
		students.GET("/:id/academic-records", studentController.GetAcademicRecords)
		students.GET("/:id/schemes", studentController.GetSchemes)

		students.GET("/:id/documents", documentController.List)
		students.POST("/:id/documents/upload", documentController.Upload)
		students.DELETE("/:id/documents/:docId", documentController.Delete)

		students.POST("/:id/transfer-certificate", certificateController.Apply)
		students.GET("/:id/transfer-certificate", certificateController.ListForStudent)
		students.DELETE("/:id/transfer-certificate/:tcId", certificateController.DeleteByStudent)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/students", adminController.ListStudents)
		admin.GET("/students/:id", adminController.GetStudent)
		admin.PUT("/students/:id", adminController.UpdateStudent)
		admin.GET("/students/:id/comprehensive", adminController.GetComprehensiveDetails)

		admin.GET("/transfer-certificates", certificateController.ListAll)
		admin.PATCH("/transfer-certificates/:id", certificateController.UpdateStatus)
		admin.DELETE("/transfer-certificates/:id", certificateController.DeleteByAdmin)

		admin.GET("/schools", adminController.ListSchools)
		admin.GET("/academic-records", adminController.GetAcademicRecords)
	}
}
