package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

type fakeEnrollmentService struct {
	enrollErr   error
	gradeErr    error
	students    []*models.Student
	studentsErr error
	courses     []*models.CourseWithTeacher
	coursesErr  error

	lastTeacherID int64
	lastStudentID int64
}

func (f *fakeEnrollmentService) EnrollStudent(_ context.Context, studentID, courseID int64) error {
	return f.enrollErr
}

func (f *fakeEnrollmentService) AssignGrade(_ context.Context, teacherID, studentID, courseID int64, grade float64) error {
	f.lastTeacherID = teacherID
	return f.gradeErr
}

func (f *fakeEnrollmentService) StudentsForTeacher(_ context.Context, teacherID int64) ([]*models.Student, error) {
	f.lastTeacherID = teacherID
	return f.students, f.studentsErr
}

func (f *fakeEnrollmentService) CoursesForStudent(_ context.Context, studentID int64) ([]*models.CourseWithTeacher, error) {
	f.lastStudentID = studentID
	return f.courses, f.coursesErr
}

func newEnrollmentRouter(svc *fakeEnrollmentService, authedUserID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewEnrollmentController(svc)

	// Stand-in for the JWT middleware
	router.Use(func(c *gin.Context) {
		c.Set("userID", authedUserID)
		c.Next()
	})

	router.POST("/enrollments", ctrl.EnrollStudent)
	router.PUT("/enrollments/grade", ctrl.AssignGrade)
	router.GET("/teachers/:id/students", ctrl.GetStudentsForTeacher)
	router.GET("/students/:id/courses", ctrl.GetCoursesForStudent)
	return router
}

func TestEnrollStudentEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		enrollErr  error
		wantStatus int
	}{
		{"created", `{"studentId": 3, "courseId": 1}`, nil, http.StatusCreated},
		{"missing fields", `{"studentId": 3}`, nil, http.StatusBadRequest},
		{"duplicate pair", `{"studentId": 3, "courseId": 1}`, apperrors.ErrDuplicateEnrollment, http.StatusConflict},
		{"unknown course", `{"studentId": 3, "courseId": 99}`, apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"unknown student", `{"studentId": 99, "courseId": 1}`, apperrors.ErrStudentNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEnrollmentRouter(&fakeEnrollmentService{enrollErr: tt.enrollErr}, 1)

			req := httptest.NewRequest(http.MethodPost, "/enrollments", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestAssignGradeEndpointUsesAuthedTeacher(t *testing.T) {
	svc := &fakeEnrollmentService{}
	router := newEnrollmentRouter(svc, 7)

	req := httptest.NewRequest(http.MethodPut, "/enrollments/grade",
		strings.NewReader(`{"studentId": 3, "courseId": 1, "grade": 88}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(7), svc.lastTeacherID)
}

func TestAssignGradeEndpointForbiddenForNonOwner(t *testing.T) {
	svc := &fakeEnrollmentService{gradeErr: apperrors.ErrNotCourseOwner}
	router := newEnrollmentRouter(svc, 7)

	req := httptest.NewRequest(http.MethodPut, "/enrollments/grade",
		strings.NewReader(`{"studentId": 3, "courseId": 1, "grade": 88}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetStudentsForTeacherEndpoint(t *testing.T) {
	svc := &fakeEnrollmentService{
		students: []*models.Student{
			{UserID: 3, GradeLevel: 8, User: &models.User{Username: "ann", Name: "Ann", Email: "ann@school.edu"}},
		},
	}
	router := newEnrollmentRouter(svc, 7)

	t.Run("numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/7/students", nil))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data []struct {
				UserID     int64  `json:"userId"`
				Username   string `json:"username"`
				GradeLevel int    `json:"gradeLevel"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "ann", resp.Data[0].Username)
		assert.Equal(t, 8, resp.Data[0].GradeLevel)
	})

	t.Run("me resolves to authed user", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/me/students", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), svc.lastTeacherID)
	})

	t.Run("garbage id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/abc/students", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetCoursesForStudentEndpoint(t *testing.T) {
	grade := 91.0
	svc := &fakeEnrollmentService{
		courses: []*models.CourseWithTeacher{
			{Course: models.Course{ID: 1, Name: "Math", Credits: 3}, TeacherName: "Mr. Chips", Grade: &grade},
			{Course: models.Course{ID: 2, Name: "Physics", Credits: 3}, TeacherName: "Mr. Chips"},
		},
	}
	router := newEnrollmentRouter(svc, 3)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/me/courses", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(3), svc.lastStudentID)

	var resp struct {
		Data []struct {
			CourseName  string   `json:"courseName"`
			TeacherName string   `json:"teacherName"`
			Grade       *float64 `json:"grade"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Mr. Chips", resp.Data[0].TeacherName)
	require.NotNil(t, resp.Data[0].Grade)
	assert.Nil(t, resp.Data[1].Grade)
}
