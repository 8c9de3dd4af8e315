package tests

import (
	"net/http"
	"testing"

	. "github.com/trezcool/staffroom/apps/api/echo"
	"github.com/trezcool/staffroom/core/school"
)

func Test_dashboard(t *testing.T) {
	seed := school.SeedState()
	overview := OverviewDashboard{
		Stats:         seed.OverviewStats(),
		Workloads:     seed.Workloads(),
		MonthlyLeaves: seed.MonthlyApprovedLeaves(),
	}

	tests := []httpTest{
		{name: "admin", path: "/api/dashboard", wantCode: http.StatusOK, wantData: marchallObj(t, overview)},
		{name: "principal", role: school.RolePrincipal, path: "/api/dashboard", wantCode: http.StatusOK, wantData: marchallObj(t, overview)},
		{
			name: "teacher on leave", role: school.RoleTeacher, extra: "T03", path: "/api/dashboard", wantCode: http.StatusOK,
			wantData: marchallObj(t, TeacherDashboard{
				Stats:         school.TeacherStats{LeavesTaken: 1},
				LeaveRequests: []LeaveRow{{LeaveRequest: seed.LeaveRequests[0], TeacherName: "Peter Jones"}},
			}),
		},
		{
			name: "teacher", role: school.RoleTeacher, extra: "T01", path: "/api/dashboard", wantCode: http.StatusOK,
			wantData: marchallObj(t, TeacherDashboard{Stats: school.TeacherStats{PeriodsTaken: 4, ProxyPeriods: 1}, LeaveRequests: []LeaveRow{}}),
		},
	}
	runHTTPTests(t, tests)
}
