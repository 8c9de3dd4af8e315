package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/staffroom/apps/api/echo"
	"github.com/trezcool/staffroom/core/school"
	"github.com/trezcool/staffroom/tests"
)

var errForbidden = httpErr{Error: "permission denied"}

// setup returns a server over a freshly seeded store, acting as role (teacherID picks the teacher).
func setup(t *testing.T, parser *testutil.FakeParser, role school.Role, teacherID ...string) (*Server, *school.Service) {
	if parser == nil {
		parser = &testutil.FakeParser{}
	}
	conf := testutil.Config()
	validate, translator := testutil.NewValidator()
	svc, _ := testutil.NewService(t, parser)

	act := school.SwitchUser{Role: role}
	if len(teacherID) > 0 {
		act.ID = teacherID[0]
	}
	testutil.Dispatch(t, svc, act)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     testutil.NewLogger(conf),
		SchoolSvc:  svc,
		Validate:   validate,
		Translator: translator,
	})
	return server, svc
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	role     school.Role
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	if objs == nil {
		objs = []interface{}{}
	}
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if _, ok := j1.([]interface{}); !ok || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// runHTTPTests runs every test against its own freshly seeded server.
func runHTTPTests(t *testing.T, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := tt.role
			if role == "" {
				role = school.RoleAdmin
			}
			var teacherID []string
			if id, ok := tt.extra.(string); ok {
				teacherID = append(teacherID, id)
			}
			server, _ := setup(t, nil, role, teacherID...)

			req, rec := newRequest(tt.method, tt.path, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
