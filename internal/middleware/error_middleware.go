package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// HandleAPIError maps service and repository errors to API responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"),
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		})
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found"),
		})
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"),
		})
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrDuplicateEnrollment):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student is already enrolled in this course"),
		})
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already taken"),
		})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"),
		})
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		})
	case errors.Is(err, apperrors.ErrNotCourseOwner):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Course is owned by another teacher"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})
	case errors.Is(err, apperrors.ErrInvalidGradeLevel),
		errors.Is(err, apperrors.ErrInvalidGrade),
		errors.Is(err, apperrors.ErrInvalidAttendanceStatus),
		errors.Is(err, apperrors.ErrInvalidWeekday),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, services.ErrUserValidation),
		errors.Is(err, services.ErrCourseValidation),
		errors.Is(err, services.ErrEnrollmentValidation),
		errors.Is(err, services.ErrAttendanceValidation),
		errors.Is(err, services.ErrTimetableValidation):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(400, dto.APIResponse{Error: errorDetail})
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
