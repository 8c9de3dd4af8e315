package school

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

func newTeacher(id, name string) Teacher {
	return Teacher{ID: id, Name: name, Email: id + "@school.test", Subject: "Mathematics"}
}

func mustReduce(t *testing.T, s State, acts ...Action) State {
	t.Helper()
	for _, act := range acts {
		var err error
		if s, err = Reduce(s, act); err != nil {
			t.Fatalf("Reduce(%s) failed: %v", act.Kind(), err)
		}
	}
	return s
}

func TestReduce_errors(t *testing.T) {
	seed := SeedState()
	tests := []struct {
		name    string
		act     Action
		wantErr error
	}{
		{name: "nil action", act: nil, wantErr: ErrUnknownAction},
		{name: "switch: invalid role", act: SwitchUser{Role: "Janitor"}, wantErr: ErrInvalidRole},
		{name: "switch: unknown teacher", act: SwitchUser{Role: RoleTeacher, ID: "T99"}, wantErr: ErrNotFound},
		{name: "add teacher: no id", act: AddTeacher{Teacher: newTeacher("", "Nobody")}, wantErr: ErrMissingID},
		{name: "add teacher: duplicate id", act: AddTeacher{Teacher: newTeacher("T01", "Clone")}, wantErr: ErrDuplicateID},
		{name: "update teacher: unknown id", act: UpdateTeacher{Teacher: newTeacher("T99", "Ghost")}, wantErr: ErrNotFound},
		{name: "delete teacher: unknown id", act: DeleteTeacher{ID: "T99"}, wantErr: ErrNotFound},
		{name: "add log: negative periods", act: AddLog{Log: DailyLog{ID: "L10", TeacherID: "T01", PeriodsTaken: -1}}, wantErr: ErrNegativeCount},
		{name: "add log: negative proxies", act: AddLog{Log: DailyLog{ID: "L10", TeacherID: "T01", ProxyPeriods: -2}}, wantErr: ErrNegativeCount},
		{name: "add log: no id", act: AddLog{Log: DailyLog{TeacherID: "T01"}}, wantErr: ErrMissingID},
		{name: "add log: duplicate id", act: AddLog{Log: DailyLog{ID: "L01", TeacherID: "T01"}}, wantErr: ErrDuplicateID},
		{
			name: "add leave: not pending", act: AddLeaveRequest{Request: LeaveRequest{ID: "LR10", TeacherID: "T01", Status: LeaveApproved}},
			wantErr: ErrInvalidStatus,
		},
		{name: "add leave: no id", act: AddLeaveRequest{Request: LeaveRequest{TeacherID: "T01"}}, wantErr: ErrMissingID},
		{name: "add leave: duplicate id", act: AddLeaveRequest{Request: LeaveRequest{ID: "LR01", TeacherID: "T01"}}, wantErr: ErrDuplicateID},
		{name: "leave status: pending", act: UpdateLeaveStatus{ID: "LR02", Status: LeavePending}, wantErr: ErrInvalidStatus},
		{name: "leave status: garbage", act: UpdateLeaveStatus{ID: "LR02", Status: "maybe"}, wantErr: ErrInvalidStatus},
		{name: "leave status: unknown id", act: UpdateLeaveStatus{ID: "LR99", Status: LeaveApproved}, wantErr: ErrNotFound},
		{name: "leave status: already resolved", act: UpdateLeaveStatus{ID: "LR01", Status: LeaveRejected}, wantErr: ErrAlreadyResolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reduce(seed, tt.act)
			if errors.Cause(err) != tt.wantErr {
				t.Errorf("Reduce() error = %v; wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, seed) {
				t.Errorf("Reduce() changed the state on error:\n got %+v\nwant %+v", got, seed)
			}
		})
	}
}

func TestReduce_doesNotMutateInput(t *testing.T) {
	seed := SeedState()
	before := SeedState()

	acts := []Action{
		SwitchUser{Role: RoleTeacher, ID: "T02"},
		AddTeacher{Teacher: newTeacher("T05", "New")},
		UpdateTeacher{Teacher: newTeacher("T01", "Renamed")},
		DeleteTeacher{ID: "T03"},
		SetTimetable{Entries: []TimetableEntry{{Day: "Monday", Period: 1, Subject: "Art", ClassName: "8-A", TeacherID: "T01"}}},
		AddLog{Log: DailyLog{ID: "L10", TeacherID: "T01", Date: "2024-07-22"}},
		AddLeaveRequest{Request: LeaveRequest{ID: "LR10", TeacherID: "T01"}},
		UpdateLeaveStatus{ID: "LR02", Status: LeaveApproved},
	}
	for _, act := range acts {
		if _, err := Reduce(seed, act); err != nil {
			t.Fatalf("Reduce(%s) failed: %v", act.Kind(), err)
		}
		if !reflect.DeepEqual(seed, before) {
			t.Fatalf("Reduce(%s) mutated its input", act.Kind())
		}
	}
}

func TestReduce_SwitchUser(t *testing.T) {
	tests := []struct {
		name string
		act  SwitchUser
		want CurrentUser
	}{
		{name: "teacher by id", act: SwitchUser{Role: RoleTeacher, ID: "T02"}, want: CurrentUser{ID: "T02", Name: "Jane Smith", Role: RoleTeacher}},
		{
			name: "teacher name comes from the record", act: SwitchUser{Role: RoleTeacher, ID: "T03", Name: "Someone Else"},
			want: CurrentUser{ID: "T03", Name: "Peter Jones", Role: RoleTeacher},
		},
		{name: "teacher without id picks the first", act: SwitchUser{Role: RoleTeacher}, want: CurrentUser{ID: "T01", Name: "John Doe", Role: RoleTeacher}},
		{name: "principal", act: SwitchUser{Role: RolePrincipal, ID: "T01"}, want: CurrentUser{ID: "U0P", Name: "Principal", Role: RolePrincipal}},
		{name: "admin", act: SwitchUser{Role: RoleAdmin, Name: "Root"}, want: CurrentUser{ID: "U0A", Name: "Admin User", Role: RoleAdmin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustReduce(t, SeedState(), tt.act)
			if s.CurrentUser != tt.want {
				t.Errorf("CurrentUser = %+v; want %+v", s.CurrentUser, tt.want)
			}
		})
	}

	t.Run("teacher without teachers", func(t *testing.T) {
		_, err := Reduce(State{CurrentUser: defaultUsers[RoleAdmin]}, SwitchUser{Role: RoleTeacher})
		if errors.Cause(err) != ErrNotFound {
			t.Errorf("Reduce() error = %v; wantErr %v", err, ErrNotFound)
		}
	})
}

func TestReduce_AddTeacher(t *testing.T) {
	s := State{CurrentUser: defaultUsers[RoleAdmin]}
	ids := []string{"A", "B", "C", "D", "E"}
	for _, id := range ids {
		s = mustReduce(t, s, AddTeacher{Teacher: newTeacher(id, "Teacher "+id)})
	}

	if len(s.Teachers) != len(ids) {
		t.Fatalf("len(Teachers) = %d; want %d", len(s.Teachers), len(ids))
	}
	for _, id := range ids {
		if got, ok := s.Teacher(id); !ok || got != newTeacher(id, "Teacher "+id) {
			t.Errorf("Teacher(%q) = %+v, %v", id, got, ok)
		}
	}
}

func TestReduce_DeleteThenAddTeacher(t *testing.T) {
	replacement := Teacher{ID: "T02", Name: "Jane Doe", Email: "jane.doe@example.com", Subject: "Physics", ClassTeacherOf: null.StringFrom("7-A")}
	s := mustReduce(t, SeedState(), DeleteTeacher{ID: "T02"}, AddTeacher{Teacher: replacement})

	var matches []Teacher
	for _, tch := range s.Teachers {
		if tch.ID == "T02" {
			matches = append(matches, tch)
		}
	}
	if len(matches) != 1 || matches[0] != replacement {
		t.Errorf("teachers with id T02 = %+v; want [%+v]", matches, replacement)
	}
}

func TestReduce_DeleteTeacherKeepsReferences(t *testing.T) {
	s := mustReduce(t, SeedState(), DeleteTeacher{ID: "T03"})

	if _, ok := s.Teacher("T03"); ok {
		t.Error("teacher T03 still present")
	}
	if len(s.Teachers) != 3 {
		t.Errorf("len(Teachers) = %d; want 3", len(s.Teachers))
	}
	if lr, ok := s.LeaveRequest("LR01"); !ok || lr.TeacherID != "T03" {
		t.Errorf("LeaveRequest(LR01) = %+v, %v; want orphaned request kept", lr, ok)
	}
	if len(s.DailyLogs) != 3 {
		t.Errorf("len(DailyLogs) = %d; want 3", len(s.DailyLogs))
	}
	if name := s.TeacherName("T03"); name != "Unknown" {
		t.Errorf("TeacherName(T03) = %q; want Unknown", name)
	}
}

func TestReduce_UpdateTeacher(t *testing.T) {
	updated := Teacher{ID: "T04", Name: "Mary Johnson-Lee", Email: "mary.jl@example.com", Subject: "Literature"}
	s := mustReduce(t, SeedState(), UpdateTeacher{Teacher: updated})

	if got, _ := s.Teacher("T04"); got != updated {
		t.Errorf("Teacher(T04) = %+v; want %+v", got, updated)
	}
	seed := SeedState()
	for i := 0; i < 3; i++ {
		if s.Teachers[i] != seed.Teachers[i] {
			t.Errorf("Teachers[%d] = %+v; want unchanged %+v", i, s.Teachers[i], seed.Teachers[i])
		}
	}
}

func TestReduce_SetTimetable(t *testing.T) {
	e1 := []TimetableEntry{
		{Day: "Monday", Period: 1, Subject: "Mathematics", ClassName: "10-A", TeacherID: "T01"},
		{Day: "Monday", Period: 2, Subject: "Science", ClassName: "10-A", TeacherID: "T02"},
	}
	e2 := []TimetableEntry{
		{Day: "Friday", Period: 8, Subject: "History", ClassName: "9-B", TeacherID: "T03"},
	}
	s := mustReduce(t, SeedState(), SetTimetable{Entries: e1}, SetTimetable{Entries: e2})

	if !reflect.DeepEqual(s.Timetable, e2) {
		t.Errorf("Timetable = %+v; want %+v", s.Timetable, e2)
	}

	// the store keeps its own copy
	e2[0].Subject = "Changed"
	if s.Timetable[0].Subject != "History" {
		t.Error("Timetable shares its backing array with the action")
	}

	s = mustReduce(t, s, SetTimetable{})
	if len(s.Timetable) != 0 {
		t.Errorf("len(Timetable) = %d; want 0", len(s.Timetable))
	}
}

func TestReduce_AddLog(t *testing.T) {
	log := DailyLog{ID: "L04", Date: "2024-07-20", TeacherID: "T01", PeriodsTaken: 3}
	dup := DailyLog{ID: "L05", Date: "2024-07-20", TeacherID: "T01", PeriodsTaken: 2}
	s := mustReduce(t, SeedState(), AddLog{Log: log}, AddLog{Log: dup})

	if len(s.DailyLogs) != 5 {
		t.Fatalf("len(DailyLogs) = %d; want 5", len(s.DailyLogs))
	}
	if s.DailyLogs[3] != log || s.DailyLogs[4] != dup {
		t.Errorf("DailyLogs[3:] = %+v; want appended in order", s.DailyLogs[3:])
	}
}

func TestReduce_LeaveRequestLifecycle(t *testing.T) {
	req := LeaveRequest{ID: "LR03", TeacherID: "T04", StartDate: "2024-07-25", EndDate: "2024-07-26", Reason: "x", Status: LeavePending}
	s := mustReduce(t, SeedState(), AddLeaveRequest{Request: req})

	if len(s.LeaveRequests) != 3 {
		t.Fatalf("len(LeaveRequests) = %d; want 3", len(s.LeaveRequests))
	}
	if got, _ := s.LeaveRequest("LR03"); got != req {
		t.Errorf("LeaveRequest(LR03) = %+v; want %+v", got, req)
	}

	approved := mustReduce(t, s, UpdateLeaveStatus{ID: "LR03", Status: LeaveApproved})
	want := req
	want.Status = LeaveApproved
	if got, _ := approved.LeaveRequest("LR03"); got != want {
		t.Errorf("LeaveRequest(LR03) = %+v; want %+v", got, want)
	}
	for i := 0; i < 2; i++ {
		if approved.LeaveRequests[i] != s.LeaveRequests[i] {
			t.Errorf("LeaveRequests[%d] changed: %+v", i, approved.LeaveRequests[i])
		}
	}

	// resolved requests are terminal
	again, err := Reduce(approved, UpdateLeaveStatus{ID: "LR03", Status: LeaveRejected})
	if errors.Cause(err) != ErrAlreadyResolved {
		t.Errorf("Reduce() error = %v; wantErr %v", err, ErrAlreadyResolved)
	}
	if got, _ := again.LeaveRequest("LR03"); got.Status != LeaveApproved {
		t.Errorf("Status = %q; want %q", got.Status, LeaveApproved)
	}
}

func TestReduce_AddLeaveRequestDefaultsToPending(t *testing.T) {
	s := mustReduce(t, SeedState(), AddLeaveRequest{Request: LeaveRequest{ID: "LR03", TeacherID: "T01", StartDate: "2024-08-01", EndDate: "2024-08-01"}})
	if got, _ := s.LeaveRequest("LR03"); got.Status != LeavePending {
		t.Errorf("Status = %q; want %q", got.Status, LeavePending)
	}
}
