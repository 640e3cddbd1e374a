package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cy-rus404/sms-backend/internal/app/models/dto"
)

// reportDateLayout formats attendance dates in reports
const reportDateLayout = "2006-01-02"

// ReportService assembles per-student reports for the admin "Reports" tab
// and the text export.
type ReportService interface {
	StudentReport(ctx context.Context, studentID int64) (*dto.StudentReportResponse, error)
	RenderText(report *dto.StudentReportResponse) string
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	userStore       UserStore
	courseStore     CourseStore
	enrollmentStore EnrollmentStore
	attendanceStore AttendanceStore
	timetableStore  TimetableStore
}

// NewReportService creates a new report service instance
func NewReportService(
	userStore UserStore,
	courseStore CourseStore,
	enrollmentStore EnrollmentStore,
	attendanceStore AttendanceStore,
	timetableStore TimetableStore,
) ReportService {
	return &reportServiceImpl{
		userStore:       userStore,
		courseStore:     courseStore,
		enrollmentStore: enrollmentStore,
		attendanceStore: attendanceStore,
		timetableStore:  timetableStore,
	}
}

// StudentReport gathers everything known about a student: courses with
// owning teachers and grades, attendance and timetable.
func (s *reportServiceImpl) StudentReport(ctx context.Context, studentID int64) (*dto.StudentReportResponse, error) {
	student, err := s.userStore.GetStudentByUserID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	report := &dto.StudentReportResponse{
		StudentID:  student.UserID,
		GradeLevel: student.GradeLevel,
	}
	if student.User != nil {
		report.Username = student.User.Username
		report.Name = student.User.Name
	}

	courses, err := s.enrollmentStore.GetCoursesForStudent(ctx, student.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading student courses: %w", err)
	}

	courseNames := make(map[int64]string, len(courses))
	for _, cwt := range courses {
		courseNames[cwt.Course.ID] = cwt.Course.Name
		report.Courses = append(report.Courses, dto.ReportCourse{
			CourseName:  cwt.Course.Name,
			TeacherName: cwt.TeacherName,
			Credits:     cwt.Course.Credits,
			Grade:       cwt.Grade,
		})
	}

	attendance, err := s.attendanceStore.GetByStudent(ctx, student.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading attendance: %w", err)
	}
	for _, a := range attendance {
		report.Attendance = append(report.Attendance, dto.ReportAttendance{
			CourseName: s.courseName(ctx, courseNames, a.CourseID),
			Date:       a.Date.Format(reportDateLayout),
			Status:     string(a.Status),
		})
	}

	slots, err := s.timetableStore.GetByStudent(ctx, student.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading timetable: %w", err)
	}
	for _, slot := range slots {
		report.Timetable = append(report.Timetable, dto.ReportTimetableSlot{
			CourseName: s.courseName(ctx, courseNames, slot.CourseID),
			Day:        string(slot.Day),
			StartTime:  slot.StartTime,
			EndTime:    slot.EndTime,
		})
	}

	return report, nil
}

// courseName resolves a course name, preferring the already-loaded set
func (s *reportServiceImpl) courseName(ctx context.Context, known map[int64]string, courseID int64) string {
	if name, ok := known[courseID]; ok {
		return name
	}
	course, err := s.courseStore.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Sprintf("course %d", courseID)
	}
	known[courseID] = course.Name
	return course.Name
}

// RenderText renders the report in the plain-text shape the desktop
// application used to export.
func (s *reportServiceImpl) RenderText(report *dto.StudentReportResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report for %s (ID: %d)\n", report.Username, report.StudentID)
	fmt.Fprintf(&b, "Grade Level: %d\n\n", report.GradeLevel)

	for _, course := range report.Courses {
		fmt.Fprintf(&b, "Course: %s\n", course.CourseName)
		fmt.Fprintf(&b, "Teacher: %s\n", course.TeacherName)
		if course.Grade != nil {
			fmt.Fprintf(&b, "Grade: %.1f\n", *course.Grade)
		} else {
			b.WriteString("Grade: N/A\n")
		}
		b.WriteString("\n")
	}

	for _, a := range report.Attendance {
		fmt.Fprintf(&b, "Attendance: %s in %s on %s\n", a.Status, a.CourseName, a.Date)
	}
	if len(report.Attendance) > 0 {
		b.WriteString("\n")
	}

	for _, slot := range report.Timetable {
		fmt.Fprintf(&b, "Schedule: %s %s %s-%s\n", slot.CourseName, slot.Day, slot.StartTime, slot.EndTime)
	}

	return b.String()
}
