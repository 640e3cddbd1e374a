package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/app/services"
)

type fakeCourseService struct {
	course     *models.Course
	courseErr  error
	all        []*models.CourseWithTeacher
	allErr     error
	byTeacher  []*models.Course
	teacherErr error

	lastTeacherID int64
}

func (f *fakeCourseService) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, services.ErrCourseValidation
	}
	return f.course, f.courseErr
}

func (f *fakeCourseService) GetAllCourses(_ context.Context) ([]*models.CourseWithTeacher, error) {
	return f.all, f.allErr
}

func (f *fakeCourseService) GetCoursesByTeacher(_ context.Context, teacherID int64) ([]*models.Course, error) {
	f.lastTeacherID = teacherID
	return f.byTeacher, f.teacherErr
}

func newCourseRouter(svc *fakeCourseService, authedUserID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCourseController(svc)

	// Stand-in for the JWT middleware
	router.Use(func(c *gin.Context) {
		c.Set("userID", authedUserID)
		c.Next()
	})

	router.GET("/courses", ctrl.GetAllCourses)
	router.GET("/courses/:id", ctrl.GetCourseByID)
	router.GET("/teachers/:id/courses", ctrl.GetCoursesByTeacher)
	return router
}

func TestGetAllCoursesEndpoint(t *testing.T) {
	svc := &fakeCourseService{
		all: []*models.CourseWithTeacher{
			{
				Course:      models.Course{ID: 1, Name: "Math", TeacherID: 4, Credits: 3},
				TeacherName: "Mr. Chips",
			},
		},
	}
	router := newCourseRouter(svc, 4)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []struct {
			ID          int64  `json:"id"`
			Name        string `json:"name"`
			TeacherName string `json:"teacherName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Data[0].ID)
	assert.Equal(t, "Math", resp.Data[0].Name)
	assert.Equal(t, "Mr. Chips", resp.Data[0].TeacherName)
}

func TestGetCourseByIDNonPositiveIDIsBadRequest(t *testing.T) {
	router := newCourseRouter(&fakeCourseService{}, 4)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses/-1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestGetCoursesByTeacherEndpoint(t *testing.T) {
	svc := &fakeCourseService{
		byTeacher: []*models.Course{
			{ID: 2, Name: "Physics", TeacherID: 9, Credits: 3},
		},
	}
	router := newCourseRouter(svc, 9)

	t.Run("numeric id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/9/courses", nil))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Data []struct {
				Name      string `json:"name"`
				TeacherID int64  `json:"teacherId"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Physics", resp.Data[0].Name)
		assert.Equal(t, int64(9), resp.Data[0].TeacherID)
	})

	t.Run("me resolves to authed user", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/me/courses", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(9), svc.lastTeacherID)
	})

	t.Run("garbage id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teachers/abc/courses", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
