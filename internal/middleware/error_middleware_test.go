package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"duplicate enrollment", apperrors.ErrDuplicateEnrollment, http.StatusConflict},
		{"username taken", apperrors.ErrUsernameTaken, http.StatusConflict},
		{"not course owner", apperrors.ErrNotCourseOwner, http.StatusForbidden},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"user validation", fmt.Errorf("%w: username is required", services.ErrUserValidation), http.StatusBadRequest},
		{"course validation", fmt.Errorf("%w: invalid course ID", services.ErrCourseValidation), http.StatusBadRequest},
		{"enrollment validation", fmt.Errorf("%w: invalid student ID", services.ErrEnrollmentValidation), http.StatusBadRequest},
		{"attendance validation", fmt.Errorf("%w: invalid course ID", services.ErrAttendanceValidation), http.StatusBadRequest},
		{"timetable validation", fmt.Errorf("%w: start time must be HH:MM", services.ErrTimetableValidation), http.StatusBadRequest},
		{"invalid grade", apperrors.ErrInvalidGrade, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}
