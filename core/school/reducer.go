package school

import (
	"github.com/pkg/errors"
)

// Reduce applies act to s and returns the resulting snapshot.
// Reduce never mutates s; on error it returns s unchanged.
func Reduce(s State, act Action) (State, error) {
	var (
		next State
		err  error
	)
	switch a := act.(type) {
	case SwitchUser:
		next, err = switchUser(s, a)
	case AddTeacher:
		next, err = addTeacher(s, a)
	case UpdateTeacher:
		next, err = updateTeacher(s, a)
	case DeleteTeacher:
		next, err = deleteTeacher(s, a)
	case SetTimetable:
		next = s.Clone()
		next.Timetable = append([]TimetableEntry{}, a.Entries...)
	case AddLog:
		next, err = addLog(s, a)
	case AddLeaveRequest:
		next, err = addLeaveRequest(s, a)
	case UpdateLeaveStatus:
		next, err = updateLeaveStatus(s, a)
	default:
		err = ErrUnknownAction
	}
	if err != nil {
		kind := "<nil>"
		if act != nil {
			kind = act.Kind()
		}
		return s, errors.Wrap(err, kind)
	}
	return next, nil
}

func switchUser(s State, a SwitchUser) (State, error) {
	if !a.Role.IsValid() {
		return s, ErrInvalidRole
	}

	var usr CurrentUser
	if a.Role == RoleTeacher {
		var t Teacher
		if a.ID == "" {
			if len(s.Teachers) == 0 {
				return s, errors.Wrap(ErrNotFound, "no teachers")
			}
			t = s.Teachers[0]
		} else {
			var ok bool
			if t, ok = s.Teacher(a.ID); !ok {
				return s, errors.Wrap(ErrNotFound, "teacher "+a.ID)
			}
		}
		usr = CurrentUser{ID: t.ID, Name: t.Name, Role: RoleTeacher}
	} else {
		usr = defaultUsers[a.Role]
	}

	next := s.Clone()
	next.CurrentUser = usr
	return next, nil
}

func addTeacher(s State, a AddTeacher) (State, error) {
	if a.Teacher.ID == "" {
		return s, ErrMissingID
	}
	if _, exists := s.Teacher(a.Teacher.ID); exists {
		return s, errors.Wrap(ErrDuplicateID, "teacher "+a.Teacher.ID)
	}
	next := s.Clone()
	next.Teachers = append(next.Teachers, a.Teacher)
	return next, nil
}

func updateTeacher(s State, a UpdateTeacher) (State, error) {
	next := s.Clone()
	found := false
	for i, t := range next.Teachers {
		if t.ID == a.Teacher.ID {
			next.Teachers[i] = a.Teacher
			found = true
		}
	}
	if !found {
		return s, errors.Wrap(ErrNotFound, "teacher "+a.Teacher.ID)
	}
	return next, nil
}

// deleteTeacher leaves logs, leave requests and timetable entries referencing the teacher in place.
func deleteTeacher(s State, a DeleteTeacher) (State, error) {
	next := s.Clone()
	kept := next.Teachers[:0]
	for _, t := range next.Teachers {
		if t.ID != a.ID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.Teachers) {
		return s, errors.Wrap(ErrNotFound, "teacher "+a.ID)
	}
	next.Teachers = kept
	return next, nil
}

func addLog(s State, a AddLog) (State, error) {
	if a.Log.PeriodsTaken < 0 || a.Log.ProxyPeriods < 0 {
		return s, ErrNegativeCount
	}
	if a.Log.ID == "" {
		return s, ErrMissingID
	}
	for _, l := range s.DailyLogs {
		if l.ID == a.Log.ID {
			return s, errors.Wrap(ErrDuplicateID, "log "+a.Log.ID)
		}
	}
	next := s.Clone()
	next.DailyLogs = append(next.DailyLogs, a.Log)
	return next, nil
}

func addLeaveRequest(s State, a AddLeaveRequest) (State, error) {
	req := a.Request
	if req.Status == "" {
		req.Status = LeavePending
	}
	if req.Status != LeavePending {
		return s, errors.Wrap(ErrInvalidStatus, "new leave requests must be pending")
	}
	if req.ID == "" {
		return s, ErrMissingID
	}
	if _, exists := s.LeaveRequest(req.ID); exists {
		return s, errors.Wrap(ErrDuplicateID, "leave request "+req.ID)
	}
	next := s.Clone()
	next.LeaveRequests = append(next.LeaveRequests, req)
	return next, nil
}

func updateLeaveStatus(s State, a UpdateLeaveStatus) (State, error) {
	if !a.Status.IsDecision() {
		return s, errors.Wrap(ErrInvalidStatus, string(a.Status))
	}
	next := s.Clone()
	for i, lr := range next.LeaveRequests {
		if lr.ID != a.ID {
			continue
		}
		if lr.Status != LeavePending {
			return s, errors.Wrap(ErrAlreadyResolved, "leave request "+a.ID)
		}
		next.LeaveRequests[i].Status = a.Status
		return next, nil
	}
	return s, errors.Wrap(ErrNotFound, "leave request "+a.ID)
}
