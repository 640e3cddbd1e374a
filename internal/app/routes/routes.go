package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/controllers"
	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	attendanceController *controllers.AttendanceController,
	timetableController *controllers.TimetableController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// User management (admin only)
		users := authenticated.Group("/users")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.POST("", userController.CreateUser)
			users.GET("", userController.GetAllUsers)
			users.GET("/:id", userController.GetUserByID)
			users.DELETE("/:id", userController.DeleteUser)
		}

		// Course catalog (all authenticated users)
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/:id", courseController.GetCourseByID)
			courses.GET("/:id/attendance", attendanceController.GetAttendanceForCourse)
			courses.GET("/:id/timetable", timetableController.GetSlotsForCourse)
		}

		// Enrollment management
		enrollments := authenticated.Group("/enrollments")
		{
			enrollmentsAdminProtected := enrollments.Group("")
			enrollmentsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				enrollmentsAdminProtected.POST("", enrollmentController.EnrollStudent)
			}

			enrollmentsTeacherProtected := enrollments.Group("")
			enrollmentsTeacherProtected.Use(authMiddleware.RoleRequired(models.RoleTeacher))
			{
				enrollmentsTeacherProtected.PUT("/grade", enrollmentController.AssignGrade)
			}
		}

		// A teacher sees their own students; admins can look at any teacher
		teachers := authenticated.Group("/teachers")
		{
			teachers.GET("/:id/students",
				authMiddleware.SelfOrRoleRequired(models.RoleAdmin),
				enrollmentController.GetStudentsForTeacher)
			teachers.GET("/:id/courses",
				authMiddleware.SelfOrRoleRequired(models.RoleAdmin),
				courseController.GetCoursesByTeacher)
		}

		// A student sees their own courses and report; admins can look at any student
		students := authenticated.Group("/students")
		{
			students.GET("/:id/courses",
				authMiddleware.SelfOrRoleRequired(models.RoleAdmin),
				enrollmentController.GetCoursesForStudent)
			students.GET("/:id/report",
				authMiddleware.SelfOrRoleRequired(models.RoleAdmin),
				reportController.GetStudentReport)
			students.GET("/:id/report/export",
				authMiddleware.SelfOrRoleRequired(models.RoleAdmin),
				reportController.ExportStudentReport)
		}

		// Attendance (teacher only)
		attendance := authenticated.Group("/attendance")
		attendance.Use(authMiddleware.RoleRequired(models.RoleTeacher))
		{
			attendance.POST("", attendanceController.MarkAttendance)
		}

		// Timetable management (admin only)
		timetable := authenticated.Group("/timetable")
		timetable.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			timetable.POST("", timetableController.AddSlot)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
