package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// registryFixture wires a teacher with two courses and two enrolled students.
type registryFixture struct {
	users       *fakeUserStore
	courses     *fakeCourseStore
	enrollments *fakeEnrollmentStore

	teacher  *models.User
	studentA *models.User
	studentB *models.User
	math     *models.Course
	physics  *models.Course
}

func newRegistryFixture(t *testing.T) *registryFixture {
	t.Helper()

	users := newFakeUserStore()
	courses := newFakeCourseStore()
	enrollments := newFakeEnrollmentStore(users, courses)

	f := &registryFixture{users: users, courses: courses, enrollments: enrollments}

	f.teacher = users.addUser(&models.User{Username: "teach", Name: "Mr. Chips", Role: models.RoleTeacher})
	f.studentA = users.addStudent(&models.User{Username: "ann", Name: "Ann"}, 8)
	f.studentB = users.addStudent(&models.User{Username: "bob", Name: "Bob"}, 9)

	f.math = &models.Course{ID: 1, Name: "Math", TeacherID: f.teacher.ID, Credits: 3}
	f.physics = &models.Course{ID: 2, Name: "Physics", TeacherID: f.teacher.ID, Credits: 3}
	courses.courses[1] = f.math
	courses.courses[2] = f.physics

	return f
}

func (f *registryFixture) service() EnrollmentService {
	return NewEnrollmentService(f.enrollments, f.courses, f.users)
}

func TestEnrollStudent(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()
	ctx := context.Background()

	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID))

	t.Run("duplicate pair rejected", func(t *testing.T) {
		err := svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEnrollment)
	})

	t.Run("unknown course", func(t *testing.T) {
		err := svc.EnrollStudent(ctx, f.studentA.ID, 99)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("non-student user", func(t *testing.T) {
		err := svc.EnrollStudent(ctx, f.teacher.ID, f.math.ID)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("same student in second course", func(t *testing.T) {
		assert.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.physics.ID))
	})
}

func TestStudentsForTeacherNoDuplicates(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()
	ctx := context.Background()

	// Ann is in both of the teacher's courses, Bob in one
	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID))
	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.physics.ID))
	require.NoError(t, svc.EnrollStudent(ctx, f.studentB.ID, f.math.ID))

	students, err := svc.StudentsForTeacher(ctx, f.teacher.ID)
	require.NoError(t, err)

	assert.Len(t, students, 2, "a student in two courses must appear once")
}

func TestStudentsForTeacherSpansTeachers(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()
	ctx := context.Background()

	other := f.users.addUser(&models.User{Username: "frizzle", Name: "Ms. Frizzle", Role: models.RoleTeacher})
	chemistry := &models.Course{ID: 3, Name: "Chemistry", TeacherID: other.ID, Credits: 3}
	f.courses.courses[chemistry.ID] = chemistry

	// Ann takes Math from one teacher and Chemistry from the other
	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID))
	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, chemistry.ID))

	for _, teacherID := range []int64{f.teacher.ID, other.ID} {
		students, err := svc.StudentsForTeacher(ctx, teacherID)
		require.NoError(t, err)
		require.Len(t, students, 1)
		assert.Equal(t, f.studentA.ID, students[0].UserID)
	}
}

func TestStudentsForTeacherRejectsNonTeacher(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()

	_, err := svc.StudentsForTeacher(context.Background(), f.studentA.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestCoursesForStudent(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()
	ctx := context.Background()

	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID))

	courses, err := svc.CoursesForStudent(ctx, f.studentA.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Math", courses[0].Name)
	assert.Equal(t, "Mr. Chips", courses[0].TeacherName)
	assert.Nil(t, courses[0].Grade)

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.CoursesForStudent(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("student with no enrollments", func(t *testing.T) {
		courses, err := svc.CoursesForStudent(ctx, f.studentB.ID)
		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}

func TestAssignGrade(t *testing.T) {
	f := newRegistryFixture(t)
	svc := f.service()
	ctx := context.Background()

	require.NoError(t, svc.EnrollStudent(ctx, f.studentA.ID, f.math.ID))

	t.Run("owning teacher assigns", func(t *testing.T) {
		require.NoError(t, svc.AssignGrade(ctx, f.teacher.ID, f.studentA.ID, f.math.ID, 87.5))

		courses, err := svc.CoursesForStudent(ctx, f.studentA.ID)
		require.NoError(t, err)
		require.NotNil(t, courses[0].Grade)
		assert.InDelta(t, 87.5, *courses[0].Grade, 0.001)
	})

	t.Run("other teacher denied", func(t *testing.T) {
		other := f.users.addUser(&models.User{Username: "other", Role: models.RoleTeacher})
		err := svc.AssignGrade(ctx, other.ID, f.studentA.ID, f.math.ID, 50)
		assert.ErrorIs(t, err, apperrors.ErrNotCourseOwner)
	})

	t.Run("out of range grade", func(t *testing.T) {
		err := svc.AssignGrade(ctx, f.teacher.ID, f.studentA.ID, f.math.ID, 101)
		assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
	})

	t.Run("missing enrollment", func(t *testing.T) {
		err := svc.AssignGrade(ctx, f.teacher.ID, f.studentB.ID, f.physics.ID, 70)
		assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
	})
}
