package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// Valid reports whether the role is one of the known roles
func (r RoleType) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// AttendanceStatus represents a single attendance record state
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
)

// Valid reports whether the status is one of the known states
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}

// Weekday represents a school day for timetable slots
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
)

// Valid reports whether the day is a school day
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}
