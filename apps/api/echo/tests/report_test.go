package tests

import (
	"net/http"
	"testing"

	. "github.com/trezcool/staffroom/apps/api/echo"
	"github.com/trezcool/staffroom/core/school"
)

func Test_report(t *testing.T) {
	seed := school.SeedState()
	rows := []interface{}{
		LogRow{DailyLog: seed.DailyLogs[0], TeacherName: "John Doe"},
		LogRow{DailyLog: seed.DailyLogs[1], TeacherName: "Jane Smith"},
		LogRow{DailyLog: seed.DailyLogs[2], TeacherName: "Peter Jones"},
	}
	errMonth := marchallObj(t, map[string]string{"month": "month must be a number from 1 to 12"})

	tests := []httpTest{
		{name: "all", role: school.RolePrincipal, path: "/api/reports", wantCode: http.StatusOK, wantData: marchallList(t, rows...)},
		{name: "teacher filter", path: "/api/reports?teacher_id=T01", wantCode: http.StatusOK, wantData: marchallList(t, rows[0])},
		{name: "month filter", path: "/api/reports?month=7", wantCode: http.StatusOK, wantData: marchallList(t, rows...)},
		{name: "both filters", path: "/api/reports?teacher_id=T03&month=07", wantCode: http.StatusOK, wantData: marchallList(t, rows[2])},
		{name: "no match", path: "/api/reports?month=8", wantCode: http.StatusOK, wantData: marchallList(t)},
		{name: "month out of range", path: "/api/reports?month=13", wantCode: http.StatusBadRequest, wantData: errMonth},
		{name: "month not a number", path: "/api/reports?month=july", wantCode: http.StatusBadRequest, wantData: errMonth},
		{name: "teacher", role: school.RoleTeacher, path: "/api/reports", wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
	}
	runHTTPTests(t, tests)
}
