package school

import "time"

type (
	// Workload is a teacher's aggregate teaching load over all logs.
	Workload struct {
		TeacherID    string `json:"teacher_id"`
		TeacherName  string `json:"teacher_name"`
		PeriodsTaken int    `json:"periods_taken"`
		ProxyPeriods int    `json:"proxy_periods"`
	}

	// MonthCount is one bucket of the approved-leave histogram.
	MonthCount struct {
		Month time.Month `json:"-"`
		Name  string     `json:"name"`
		Count int        `json:"count"`
	}

	// LogFilter narrows daily logs for reports; zero fields match everything.
	LogFilter struct {
		TeacherID string
		Month     *time.Month
	}

	OverviewStats struct {
		TotalTeachers        int `json:"total_teachers"`
		TotalPeriodsLogged   int `json:"total_periods_logged"`
		PendingLeaveRequests int `json:"pending_leave_requests"`
		ProxyPeriodsAssigned int `json:"proxy_periods_assigned"`
	}

	TeacherStats struct {
		PeriodsTaken int `json:"periods_taken"`
		ProxyPeriods int `json:"proxy_periods"`
		LeavesTaken  int `json:"leaves_taken"`
	}

	// GridSlot is a timetable entry as shown in the grid.
	GridSlot struct {
		TimetableEntry
		TeacherName string `json:"teacher_name"`
	}

	// TimetableGrid maps day -> period -> slot; nil marks a free slot.
	TimetableGrid struct {
		Days    []string               `json:"days"`
		Periods []int                  `json:"periods"`
		Slots   map[string][]*GridSlot `json:"slots"`
	}
)

// WorkloadFor sums the teacher's logs; a teacher with no logs has a zero workload.
func (s State) WorkloadFor(teacherID string) Workload {
	w := Workload{TeacherID: teacherID, TeacherName: s.TeacherName(teacherID)}
	for _, l := range s.DailyLogs {
		if l.TeacherID == teacherID {
			w.PeriodsTaken += l.PeriodsTaken
			w.ProxyPeriods += l.ProxyPeriods
		}
	}
	return w
}

// Workloads lists one row per teacher, in teacher order.
func (s State) Workloads() []Workload {
	rows := make([]Workload, 0, len(s.Teachers))
	for _, t := range s.Teachers {
		rows = append(rows, s.WorkloadFor(t.ID))
	}
	return rows
}

// MonthlyApprovedLeaves counts approved leave requests by the month of their start date.
// Requests with an unparsable start date are skipped.
func (s State) MonthlyApprovedLeaves() []MonthCount {
	buckets := make([]MonthCount, 12)
	for i := range buckets {
		m := time.Month(i + 1)
		buckets[i] = MonthCount{Month: m, Name: m.String()[:3]}
	}
	for _, lr := range s.LeaveRequests {
		if lr.Status != LeaveApproved {
			continue
		}
		if m, ok := monthOf(lr.StartDate); ok {
			buckets[m-1].Count++
		}
	}
	return buckets
}

// VisibleLogs returns the logs the current user may see: all of them for Admin and Principal,
// only their own for a Teacher.
func (s State) VisibleLogs() []DailyLog {
	logs := make([]DailyLog, 0, len(s.DailyLogs))
	for _, l := range s.DailyLogs {
		if s.CurrentUser.Role != RoleTeacher || l.TeacherID == s.CurrentUser.ID {
			logs = append(logs, l)
		}
	}
	return logs
}

// VisibleLeaveRequests is VisibleLogs for leave requests.
func (s State) VisibleLeaveRequests() []LeaveRequest {
	reqs := make([]LeaveRequest, 0, len(s.LeaveRequests))
	for _, lr := range s.LeaveRequests {
		if s.CurrentUser.Role != RoleTeacher || lr.TeacherID == s.CurrentUser.ID {
			reqs = append(reqs, lr)
		}
	}
	return reqs
}

// FilterLogs returns the logs matching every set field of f.
func (s State) FilterLogs(f LogFilter) []DailyLog {
	logs := make([]DailyLog, 0)
	for _, l := range s.DailyLogs {
		if f.TeacherID != "" && l.TeacherID != f.TeacherID {
			continue
		}
		if f.Month != nil {
			if m, ok := l.Month(); !ok || m != *f.Month {
				continue
			}
		}
		logs = append(logs, l)
	}
	return logs
}

func (s State) OverviewStats() OverviewStats {
	stats := OverviewStats{TotalTeachers: len(s.Teachers)}
	for _, l := range s.DailyLogs {
		stats.TotalPeriodsLogged += l.PeriodsTaken
		stats.ProxyPeriodsAssigned += l.ProxyPeriods
	}
	for _, lr := range s.LeaveRequests {
		if lr.Status == LeavePending {
			stats.PendingLeaveRequests++
		}
	}
	return stats
}

// TeacherStats summarises the teacher's own logs; a day on leave counts as one leave taken.
func (s State) TeacherStats(teacherID string) TeacherStats {
	var stats TeacherStats
	for _, l := range s.DailyLogs {
		if l.TeacherID != teacherID {
			continue
		}
		stats.PeriodsTaken += l.PeriodsTaken
		stats.ProxyPeriods += l.ProxyPeriods
		if l.OnLeave {
			stats.LeavesTaken++
		}
	}
	return stats
}

// TimetableGrid lays the timetable out as Weekdays x PeriodsPerDay.
// When several entries share a slot, the first one wins.
func (s State) TimetableGrid() TimetableGrid {
	grid := TimetableGrid{
		Days:    append([]string{}, Weekdays...),
		Periods: make([]int, PeriodsPerDay),
		Slots:   make(map[string][]*GridSlot, len(Weekdays)),
	}
	for p := range grid.Periods {
		grid.Periods[p] = p + 1
	}
	for _, day := range Weekdays {
		grid.Slots[day] = make([]*GridSlot, PeriodsPerDay)
	}
	for _, e := range s.Timetable {
		row, ok := grid.Slots[e.Day]
		if !ok || e.Period < 1 || e.Period > PeriodsPerDay {
			continue
		}
		if row[e.Period-1] == nil {
			row[e.Period-1] = &GridSlot{TimetableEntry: e, TeacherName: s.TeacherName(e.TeacherID)}
		}
	}
	return grid
}
