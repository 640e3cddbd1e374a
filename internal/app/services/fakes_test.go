package services

import (
	"context"
	"time"

	"github.com/cy-rus404/sms-backend/internal/app/models"
	"github.com/cy-rus404/sms-backend/internal/pkg/apperrors"
)

// In-memory store fakes shared by the service tests.

type fakeUserStore struct {
	users    map[int64]*models.User
	students map[int64]*models.Student
	nextID   int64

	createdCourseIDs []int64
	enrollErr        error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[int64]*models.User),
		students: make(map[int64]*models.Student),
		nextID:   1,
	}
}

func (f *fakeUserStore) addUser(user *models.User) *models.User {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user
}

func (f *fakeUserStore) addStudent(user *models.User, gradeLevel int) *models.User {
	user.Role = models.RoleStudent
	f.addUser(user)
	f.students[user.ID] = &models.Student{
		ID:         user.ID,
		UserID:     user.ID,
		GradeLevel: gradeLevel,
		User:       user,
	}
	return user
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	f.addUser(user)
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	all := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, user)
	}
	return all, nil
}

func (f *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, user := range f.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) GetStudentByUserID(_ context.Context, userID int64) (*models.Student, error) {
	student, ok := f.students[userID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeUserStore) CreateTeacherWithCourses(ctx context.Context, user *models.User, courseNames []string) ([]int64, error) {
	if _, err := f.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(courseNames))
	for range courseNames {
		ids = append(ids, int64(len(f.createdCourseIDs)+len(ids)+1))
	}
	f.createdCourseIDs = append(f.createdCourseIDs, ids...)
	return ids, nil
}

func (f *fakeUserStore) CreateStudentWithEnrollments(ctx context.Context, user *models.User, gradeLevel int, courseIDs []int64) error {
	if f.enrollErr != nil {
		return f.enrollErr
	}
	if _, err := f.CreateUser(ctx, user); err != nil {
		return err
	}
	f.students[user.ID] = &models.Student{ID: user.ID, UserID: user.ID, GradeLevel: gradeLevel, User: user}
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	delete(f.students, id)
	return nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.CourseWithTeacher, error) {
	all := make([]*models.CourseWithTeacher, 0, len(f.courses))
	for _, course := range f.courses {
		entry := &models.CourseWithTeacher{Course: *course}
		if course.Teacher != nil {
			entry.TeacherName = course.Teacher.Name
		}
		all = append(all, entry)
	}
	return all, nil
}

func (f *fakeCourseStore) GetByTeacherID(_ context.Context, teacherID int64) ([]*models.Course, error) {
	var owned []*models.Course
	for _, course := range f.courses {
		if course.TeacherID == teacherID {
			owned = append(owned, course)
		}
	}
	return owned, nil
}

type enrollmentKey struct {
	studentID int64
	courseID  int64
}

type fakeEnrollmentStore struct {
	enrollments map[enrollmentKey]*float64
	students    *fakeUserStore
	courses     *fakeCourseStore
}

func newFakeEnrollmentStore(users *fakeUserStore, courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		enrollments: make(map[enrollmentKey]*float64),
		students:    users,
		courses:     courses,
	}
}

func (f *fakeEnrollmentStore) Enroll(_ context.Context, studentID, courseID int64) error {
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.enrollments[key]; ok {
		return apperrors.ErrDuplicateEnrollment
	}
	f.enrollments[key] = nil
	return nil
}

func (f *fakeEnrollmentStore) AssignGrade(_ context.Context, studentID, courseID int64, grade float64) error {
	key := enrollmentKey{studentID, courseID}
	if _, ok := f.enrollments[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	f.enrollments[key] = &grade
	return nil
}

func (f *fakeEnrollmentStore) GetStudentsForTeacher(_ context.Context, teacherID int64) ([]*models.Student, error) {
	seen := make(map[int64]bool)
	var result []*models.Student
	for key := range f.enrollments {
		course, ok := f.courses.courses[key.courseID]
		if !ok || course.TeacherID != teacherID || seen[key.studentID] {
			continue
		}
		seen[key.studentID] = true
		if student, ok := f.students.students[key.studentID]; ok {
			result = append(result, student)
		}
	}
	return result, nil
}

func (f *fakeEnrollmentStore) GetCoursesForStudent(_ context.Context, studentID int64) ([]*models.CourseWithTeacher, error) {
	var result []*models.CourseWithTeacher
	for key, grade := range f.enrollments {
		if key.studentID != studentID {
			continue
		}
		course, ok := f.courses.courses[key.courseID]
		if !ok {
			continue
		}
		entry := &models.CourseWithTeacher{Course: *course, Grade: grade}
		if owner, ok := f.students.users[course.TeacherID]; ok {
			entry.TeacherName = owner.Name
		}
		result = append(result, entry)
	}
	return result, nil
}

type fakeAttendanceStore struct {
	records []*models.Attendance
	nextID  int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1}
}

func (f *fakeAttendanceStore) Create(_ context.Context, attendance *models.Attendance) error {
	attendance.ID = f.nextID
	f.nextID++
	f.records = append(f.records, attendance)
	return nil
}

func (f *fakeAttendanceStore) GetByCourse(_ context.Context, courseID int64) ([]*models.Attendance, error) {
	var result []*models.Attendance
	for _, record := range f.records {
		if record.CourseID == courseID {
			result = append(result, record)
		}
	}
	return result, nil
}

func (f *fakeAttendanceStore) GetByStudent(_ context.Context, studentID int64) ([]*models.Attendance, error) {
	var result []*models.Attendance
	for _, record := range f.records {
		if record.StudentID == studentID {
			result = append(result, record)
		}
	}
	return result, nil
}

type fakeTimetableStore struct {
	slots  []*models.TimetableSlot
	nextID int64
}

func newFakeTimetableStore() *fakeTimetableStore {
	return &fakeTimetableStore{nextID: 1}
}

func (f *fakeTimetableStore) Create(_ context.Context, slot *models.TimetableSlot) error {
	slot.ID = f.nextID
	f.nextID++
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeTimetableStore) GetByCourse(_ context.Context, courseID int64) ([]*models.TimetableSlot, error) {
	var result []*models.TimetableSlot
	for _, slot := range f.slots {
		if slot.CourseID == courseID {
			result = append(result, slot)
		}
	}
	return result, nil
}

func (f *fakeTimetableStore) GetByStudent(_ context.Context, studentID int64) ([]*models.TimetableSlot, error) {
	return f.slots, nil
}

type fakeTokenStore struct {
	tokens map[string]fakeToken
}

type fakeToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]fakeToken)}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	f.tokens[token] = fakeToken{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, error) {
	entry, ok := f.tokens[token]
	if !ok {
		return 0, time.Time{}, apperrors.ErrTokenNotFound
	}
	if entry.revoked {
		return 0, time.Time{}, apperrors.ErrTokenInvalid
	}
	if time.Now().After(entry.expiry) {
		return 0, time.Time{}, apperrors.ErrTokenExpired
	}
	return entry.userID, entry.expiry, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	entry, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	entry.revoked = true
	f.tokens[token] = entry
	return nil
}

func (f *fakeTokenStore) RevokeAllUserTokens(_ context.Context, userID int64) error {
	for token, entry := range f.tokens {
		if entry.userID == userID {
			entry.revoked = true
			f.tokens[token] = entry
		}
	}
	return nil
}
