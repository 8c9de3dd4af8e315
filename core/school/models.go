package school

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// DateLayout is the calendar date format used by logs and leave requests.
const DateLayout = "2006-01-02"

// Roles
const (
	RoleAdmin     Role = "Admin"
	RoleTeacher   Role = "Teacher"
	RolePrincipal Role = "Principal"
)

var (
	AllRoles = []Role{RoleAdmin, RoleTeacher, RolePrincipal}

	// role-default identities; a Teacher identity always comes from a Teacher record
	defaultUsers = map[Role]CurrentUser{
		RoleAdmin:     {ID: "U0A", Name: "Admin User", Role: RoleAdmin},
		RolePrincipal: {ID: "U0P", Name: "Principal", Role: RolePrincipal},
	}

	// Weekdays is the teaching week, in timetable order.
	Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

	// PeriodsPerDay is the number of periods shown per day in the timetable grid.
	PeriodsPerDay = 8
)

type Role string

func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CurrentUser is the acting viewer, not an authenticated identity.
type CurrentUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type Teacher struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Subject        string      `json:"subject"`
	ClassTeacherOf null.String `json:"class_teacher_of"`
}

// Ref is the {id, name} pair handed to the timetable parser.
func (t Teacher) Ref() TeacherRef {
	return TeacherRef{ID: t.ID, Name: t.Name}
}

type TeacherRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TimetableEntry struct {
	Day       string `json:"day" validate:"required,weekday"`
	Period    int    `json:"period" validate:"gte=1"`
	Subject   string `json:"subject" validate:"required"`
	ClassName string `json:"class_name" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required"`
}

type DailyLog struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // YYYY-MM-DD
	TeacherID    string `json:"teacher_id"`
	PeriodsTaken int    `json:"periods_taken"`
	ProxyPeriods int    `json:"proxy_periods"`
	OnLeave      bool   `json:"on_leave"`
}

// Month returns the calendar month of the log date.
func (l DailyLog) Month() (time.Month, bool) {
	return monthOf(l.Date)
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// IsDecision reports whether s is a status an administrator can set.
func (s LeaveStatus) IsDecision() bool {
	return s == LeaveApproved || s == LeaveRejected
}

type LeaveRequest struct {
	ID        string      `json:"id"`
	TeacherID string      `json:"teacher_id"`
	StartDate string      `json:"start_date"` // YYYY-MM-DD
	EndDate   string      `json:"end_date"`   // YYYY-MM-DD
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`
}

// State is the snapshot: the complete domain state at one point in time.
type State struct {
	CurrentUser   CurrentUser      `json:"current_user"`
	Teachers      []Teacher        `json:"teachers"`
	Timetable     []TimetableEntry `json:"timetable"`
	DailyLogs     []DailyLog       `json:"daily_logs"`
	LeaveRequests []LeaveRequest   `json:"leave_requests"`
}

// Clone returns a deep copy of the snapshot; no slice is shared with s.
func (s State) Clone() State {
	return State{
		CurrentUser:   s.CurrentUser,
		Teachers:      append([]Teacher{}, s.Teachers...),
		Timetable:     append([]TimetableEntry{}, s.Timetable...),
		DailyLogs:     append([]DailyLog{}, s.DailyLogs...),
		LeaveRequests: append([]LeaveRequest{}, s.LeaveRequests...),
	}
}

// Teacher returns the teacher with the given id.
func (s State) Teacher(id string) (Teacher, bool) {
	for _, t := range s.Teachers {
		if t.ID == id {
			return t, true
		}
	}
	return Teacher{}, false
}

// TeacherName returns the teacher's name; "Unknown" for dangling references.
func (s State) TeacherName(id string) string {
	if t, ok := s.Teacher(id); ok {
		return t.Name
	}
	return "Unknown"
}

// TeacherRefs lists the {id, name} pairs of all teachers.
func (s State) TeacherRefs() []TeacherRef {
	refs := make([]TeacherRef, 0, len(s.Teachers))
	for _, t := range s.Teachers {
		refs = append(refs, t.Ref())
	}
	return refs
}

func (s State) LeaveRequest(id string) (LeaveRequest, bool) {
	for _, lr := range s.LeaveRequests {
		if lr.ID == id {
			return lr, true
		}
	}
	return LeaveRequest{}, false
}

func monthOf(date string) (time.Month, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}
