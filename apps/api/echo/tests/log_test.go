package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/trezcool/staffroom/apps/api/echo"
	"github.com/trezcool/staffroom/core/school"
)

func Test_logApi(t *testing.T) {
	seed := school.SeedState()
	rows := []interface{}{
		LogRow{DailyLog: seed.DailyLogs[0], TeacherName: "John Doe"},
		LogRow{DailyLog: seed.DailyLogs[1], TeacherName: "Jane Smith"},
		LogRow{DailyLog: seed.DailyLogs[2], TeacherName: "Peter Jones"},
	}

	tests := []httpTest{
		{name: "query: admin", path: "/api/logs", wantCode: http.StatusOK, wantData: marchallList(t, rows...)},
		{name: "query: principal", role: school.RolePrincipal, path: "/api/logs", wantCode: http.StatusOK, wantData: marchallList(t, rows...)},
		{name: "query: teacher", role: school.RoleTeacher, extra: "T01", path: "/api/logs", wantCode: http.StatusOK, wantData: marchallList(t, rows[0])},
		{name: "query: teacher without logs", role: school.RoleTeacher, extra: "T04", path: "/api/logs", wantCode: http.StatusOK, wantData: marchallList(t)},
		{
			name: "create: principal", role: school.RolePrincipal, method: http.MethodPost, path: "/api/logs",
			body: []byte(`{"date": "2024-07-22", "teacher_id": "T01", "periods_taken": 5}`), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "create: invalid", method: http.MethodPost, path: "/api/logs",
			body:     []byte(`{"date": "2024-7-22", "teacher_id": "T01", "periods_taken": -1}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"date":          "must be a date in the YYYY-MM-DD format",
				"periods_taken": "periods_taken must be 0 or greater",
			}),
		},
	}
	runHTTPTests(t, tests)
}

func Test_logApi_create(t *testing.T) {
	server, svc := setup(t, nil, school.RoleAdmin)

	req, rec := newRequest(http.MethodPost, "/api/logs", []byte(`{"date": "2024-07-22", "teacher_id": "T01", "periods_taken": 5}`))
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var got LogRow
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if got.ID == "" || got.TeacherName != "John Doe" || got.PeriodsTaken != 5 {
		t.Errorf("created = %+v", got)
	}

	s, _ := svc.Snapshot()
	if w := s.WorkloadFor("T01"); w.PeriodsTaken != 9 || w.ProxyPeriods != 1 {
		t.Errorf("WorkloadFor(T01) = %+v; want (9, 1)", w)
	}
}
