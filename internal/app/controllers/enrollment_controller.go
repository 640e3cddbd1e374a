package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// EnrollmentController handles the student/course enrollment endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// pathID resolves a path parameter that is either a numeric user ID or the
// literal "me", which stands for the authenticated user.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	raw := ctx.Param(name)
	if raw == "me" {
		return ctx.GetInt64("userID"), true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a number or the literal \"me\"")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// EnrollStudent adds a single enrollment
// @Summary Enroll a student in a course
// @Description Creates one (student, course) enrollment. Enrolling the same pair twice is rejected.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Student enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled in course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.EnrollStudent(ctx, req.StudentID, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Student enrolled"},
	})
}

// AssignGrade sets a grade on an enrollment
// @Summary Assign a grade
// @Description Sets the grade on an enrollment in a course owned by the acting teacher
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignGradeRequest true "Grade information"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the course owner"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/grade [put]
func (c *EnrollmentController) AssignGrade(ctx *gin.Context) {
	var req dto.AssignGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacherID := ctx.GetInt64("userID")
	if err := c.enrollmentService.AssignGrade(ctx, teacherID, req.StudentID, req.CourseID, req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Grade assigned"},
	})
}

// GetStudentsForTeacher lists the students enrolled in a teacher's courses
// @Summary List a teacher's students
// @Description Returns the union of students enrolled in any course owned by the teacher, without duplicates
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher user ID, or \"me\" for the authenticated teacher"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolledStudentResponse} "Students retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/students [get]
func (c *EnrollmentController) GetStudentsForTeacher(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	students, err := c.enrollmentService.StudentsForTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.EnrolledStudentResponse, 0, len(students))
	for _, student := range students {
		resp = append(resp, dto.NewEnrolledStudentResponse(student))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetCoursesForStudent lists a student's courses
// @Summary List a student's courses
// @Description Returns the student's courses, each with the owning teacher's name and the grade if one is assigned
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student user ID, or \"me\" for the authenticated student"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentCourseResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/courses [get]
func (c *EnrollmentController) GetCoursesForStudent(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.enrollmentService.CoursesForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.StudentCourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.StudentCourseResponse{
			CourseID:    course.ID,
			CourseName:  course.Name,
			Credits:     course.Credits,
			TeacherName: course.TeacherName,
			Grade:       course.Grade,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
