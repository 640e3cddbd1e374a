package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/middleware"
)

// UserController handles the admin user management endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser handles the admin "add user" form. The payload is
// role-conditional: teachers bring a comma-separated course-name list,
// students bring a grade level and course IDs.
// @Summary Create a user
// @Description Creates an admin, teacher or student account. Teachers get one course per listed name; students get enrolled in the listed course IDs.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateUserResponse} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "Referenced course not found"
// @Failure 409 {object} dto.ErrorResponse "Username or email already taken, or duplicate enrollment"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	switch req.Role {
	case models.RoleTeacher:
		user, courseIDs, err := c.userService.AddTeacher(ctx, services.AddTeacherParams{
			Username:    req.Username,
			Password:    req.Password,
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			CourseNames: strings.Split(req.Courses, ","),
		})
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.APIResponse{
			Data: dto.CreateUserResponse{
				User:      dto.NewUserResponse(user),
				CourseIDs: courseIDs,
			},
		})

	case models.RoleStudent:
		user, err := c.userService.AddStudent(ctx, services.AddStudentParams{
			Username:   req.Username,
			Password:   req.Password,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			GradeLevel: req.GradeLevel,
			CourseIDs:  req.CourseIDs,
		})
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		resp := dto.NewUserResponse(user)
		resp.GradeLevel = &req.GradeLevel
		ctx.JSON(http.StatusCreated, dto.APIResponse{
			Data: dto.CreateUserResponse{User: resp},
		})

	case models.RoleAdmin:
		user, err := c.userService.AddAdmin(ctx, services.AddAdminParams{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
		})
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.APIResponse{
			Data: dto.CreateUserResponse{User: dto.NewUserResponse(user)},
		})

	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown role")
		errorDetail = errorDetail.WithField("role")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	}
}

// GetAllUsers lists all users
// @Summary List users
// @Description Retrieves all user accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetUserByID retrieves one user
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("User ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewUserResponse(user)
	if user.Role == models.RoleStudent {
		if student, err := c.userService.GetStudent(ctx, user.ID); err == nil {
			resp.GradeLevel = &student.GradeLevel
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// DeleteUser removes a user
// @Summary Delete user
// @Description Deletes a user account and everything hanging off it
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		errorDetail = errorDetail.WithDetails("User ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "User deleted"},
	})
}
