package school

// Action is a request to change the snapshot. The set of variants is closed:
// only the types in this file implement it.
type Action interface {
	Kind() string
	action()
}

// Action kinds
const (
	KindSwitchUser        = "SWITCH_USER"
	KindAddTeacher        = "ADD_TEACHER"
	KindUpdateTeacher     = "UPDATE_TEACHER"
	KindDeleteTeacher     = "DELETE_TEACHER"
	KindSetTimetable      = "SET_TIMETABLE"
	KindAddLog            = "ADD_LOG"
	KindAddLeaveRequest   = "ADD_LEAVE_REQUEST"
	KindUpdateLeaveStatus = "UPDATE_LEAVE_STATUS"
)

type (
	// SwitchUser changes the acting viewer. For RoleTeacher, ID selects the teacher (empty picks
	// the first one); Name is ignored in favour of the teacher record.
	SwitchUser struct {
		Role Role
		ID   string
		Name string
	}

	AddTeacher struct {
		Teacher Teacher
	}

	UpdateTeacher struct {
		Teacher Teacher
	}

	DeleteTeacher struct {
		ID string
	}

	// SetTimetable replaces the whole timetable.
	SetTimetable struct {
		Entries []TimetableEntry
	}

	AddLog struct {
		Log DailyLog
	}

	AddLeaveRequest struct {
		Request LeaveRequest
	}

	UpdateLeaveStatus struct {
		ID     string
		Status LeaveStatus
	}
)

func (SwitchUser) Kind() string        { return KindSwitchUser }
func (AddTeacher) Kind() string        { return KindAddTeacher }
func (UpdateTeacher) Kind() string     { return KindUpdateTeacher }
func (DeleteTeacher) Kind() string     { return KindDeleteTeacher }
func (SetTimetable) Kind() string      { return KindSetTimetable }
func (AddLog) Kind() string            { return KindAddLog }
func (AddLeaveRequest) Kind() string   { return KindAddLeaveRequest }
func (UpdateLeaveStatus) Kind() string { return KindUpdateLeaveStatus }

func (SwitchUser) action()        {}
func (AddTeacher) action()        {}
func (UpdateTeacher) action()     {}
func (DeleteTeacher) action()     {}
func (SetTimetable) action()      {}
func (AddLog) action()            {}
func (AddLeaveRequest) action()   {}
func (UpdateLeaveStatus) action() {}
