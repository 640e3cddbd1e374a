package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// CourseController handles course listing endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists every course with its owning teacher's name
// @Summary List courses
// @Description Retrieves all courses, each with the name of the teacher who owns it
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.CourseResponse{
			ID:          course.ID,
			Name:        course.Name,
			Credits:     course.Credits,
			TeacherID:   course.TeacherID,
			TeacherName: course.TeacherName,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetCourseByID retrieves one course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseResponse{
		ID:        course.ID,
		Name:      course.Name,
		Credits:   course.Credits,
		TeacherID: course.TeacherID,
	}
	if course.Teacher != nil {
		resp.TeacherName = course.Teacher.Name
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetCoursesByTeacher lists the courses owned by one teacher
// @Summary List a teacher's courses
// @Description Retrieves the courses owned by the given teacher. Accepts "me" for the authenticated teacher.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID or \"me\""
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/courses [get]
func (c *CourseController) GetCoursesByTeacher(ctx *gin.Context) {
	teacherID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.CourseResponse{
			ID:        course.ID,
			Name:      course.Name,
			Credits:   course.Credits,
			TeacherID: course.TeacherID,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
