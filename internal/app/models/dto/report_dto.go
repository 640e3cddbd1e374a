package dto

// ReportCourse is one course entry in a student report
type ReportCourse struct {
	CourseName  string   `json:"courseName"`
	TeacherName string   `json:"teacherName"`
	Credits     int      `json:"credits"`
	Grade       *float64 `json:"grade,omitempty"`
}

// ReportAttendance is one attendance entry in a student report
type ReportAttendance struct {
	CourseName string `json:"courseName"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ReportTimetableSlot is one timetable entry in a student report
type ReportTimetableSlot struct {
	CourseName string `json:"courseName"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

// StudentReportResponse aggregates everything known about a student
type StudentReportResponse struct {
	StudentID  int64                 `json:"studentId"`
	Username   string                `json:"username"`
	Name       string                `json:"name"`
	GradeLevel int                   `json:"gradeLevel"`
	Courses    []ReportCourse        `json:"courses"`
	Attendance []ReportAttendance    `json:"attendance,omitempty"`
	Timetable  []ReportTimetableSlot `json:"timetable,omitempty"`
}
