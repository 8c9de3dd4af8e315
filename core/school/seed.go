package school

import "github.com/volatiletech/null/v8"

// SeedState returns the data set the store starts with: four teachers, three logs and two
// leave requests, an empty timetable and the Admin as current user.
func SeedState() State {
	return State{
		CurrentUser: defaultUsers[RoleAdmin],
		Teachers: []Teacher{
			{ID: "T01", Name: "John Doe", Email: "john.doe@example.com", Subject: "Mathematics", ClassTeacherOf: null.StringFrom("10-A")},
			{ID: "T02", Name: "Jane Smith", Email: "jane.smith@example.com", Subject: "Science"},
			{ID: "T03", Name: "Peter Jones", Email: "peter.jones@example.com", Subject: "History", ClassTeacherOf: null.StringFrom("9-B")},
			{ID: "T04", Name: "Mary Johnson", Email: "mary.j@example.com", Subject: "English"},
		},
		Timetable: []TimetableEntry{},
		DailyLogs: []DailyLog{
			{ID: "L01", Date: "2024-07-20", TeacherID: "T01", PeriodsTaken: 4, ProxyPeriods: 1},
			{ID: "L02", Date: "2024-07-20", TeacherID: "T02", PeriodsTaken: 5},
			{ID: "L03", Date: "2024-07-21", TeacherID: "T03", OnLeave: true},
		},
		LeaveRequests: []LeaveRequest{
			{ID: "LR01", TeacherID: "T03", StartDate: "2024-07-21", EndDate: "2024-07-21", Reason: "Personal emergency", Status: LeaveApproved},
			{ID: "LR02", TeacherID: "T04", StartDate: "2024-07-25", EndDate: "2024-07-26", Reason: "Family wedding", Status: LeavePending},
		},
	}
}
