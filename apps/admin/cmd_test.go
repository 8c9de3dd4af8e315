package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
	"github.com/trezcool/staffroom/tests"
)

func setup(t *testing.T, parser *testutil.FakeParser, stdin string) (*commandLine, *bytes.Buffer) {
	svc, _ := testutil.NewService(t, parser)
	out := new(bytes.Buffer)
	isTerminalFunc = func() bool { return false }
	return &commandLine{
		svc:    svc,
		stdin:  strings.NewReader(stdin),
		stdout: out,
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func runCLITests(t *testing.T, tests []cliTest, parser func() *testutil.FakeParser, stdin string) {
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, parser(), stdin)
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if errors.Cause(err) != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output does not contain %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func Test_commandLine_usage(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp, wantOut: []string{"parsetimetable"}},
	}
	runCLITests(t, tests, func() *testutil.FakeParser { return &testutil.FakeParser{} }, "")
}

func Test_commandLine_seed(t *testing.T) {
	cli, out := setup(t, &testutil.FakeParser{}, "")
	if err := cli.run([]string{"admin", "seed", "-indent"}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}

	var got school.State
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if want := school.SeedState(); !reflect.DeepEqual(got, want) {
		t.Errorf("seed = %+v; want %+v", got, want)
	}
}

func Test_commandLine_workload(t *testing.T) {
	tests := []cliTest{
		{name: "all", args: []string{"workload"}, wantOut: []string{"John Doe", "Mary Johnson"}},
		{name: "one", args: []string{"workload", "-teacher", "T01"}, wantOut: []string{"T01  John Doe  4        1"}},
		{name: "unknown teacher", args: []string{"workload", "-teacher", "T99"}, wantErr: school.ErrNotFound},
		{name: "bad flag", args: []string{"workload", "-lol"}, wantErrStr: "flag provided but not defined"},
	}
	runCLITests(t, tests, func() *testutil.FakeParser { return &testutil.FakeParser{} }, "")
}

func Test_commandLine_parseTimetable(t *testing.T) {
	entries := []school.TimetableEntry{
		{Day: "Monday", Period: 1, Subject: "Mathematics", ClassName: "10-A", TeacherID: "T01"},
		{Day: "Monday", Period: 2, Subject: "Art", ClassName: "8-C", TeacherID: "T99"},
	}
	file := filepath.Join(t.TempDir(), "timetable.txt")
	if err := os.WriteFile(file, []byte("Monday: P1 maths John 10-A, P2 art ?? 8-C"), 0o600); err != nil {
		t.Fatalf("os.WriteFile() failed: %v", err)
	}

	tests := []cliTest{
		{name: "from stdin", args: []string{"parsetimetable"}, wantOut: []string{"Mathematics", "John Doe", "T99 (unknown)", "2 entries"}},
		{name: "from file", args: []string{"parsetimetable", "-file", file}, wantOut: []string{"Mathematics", "2 entries"}},
		{name: "missing file", args: []string{"parsetimetable", "-file", file + ".missing"}, wantErrStr: "no such file"},
	}
	runCLITests(t, tests, func() *testutil.FakeParser { return &testutil.FakeParser{Entries: entries} }, "Monday: P1 maths John 10-A")

	t.Run("blank input", func(t *testing.T) {
		parser := &testutil.FakeParser{Entries: entries}
		cli, _ := setup(t, parser, "  \n")
		if err := cli.run([]string{"admin", "parsetimetable"}); err == nil || !strings.Contains(err.Error(), "Please paste timetable data.") {
			t.Errorf("cli.run() error = %v", err)
		}
		if parser.Calls != 0 {
			t.Errorf("parser called %d times; want 0", parser.Calls)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		cli, _ := setup(t, &testutil.FakeParser{Err: school.NewParseError("API did not return a valid array")}, "text")
		err := cli.run([]string{"admin", "parsetimetable"})
		if _, ok := errors.Cause(err).(*school.ParseError); !ok {
			t.Errorf("cli.run() error = %v; want *school.ParseError", err)
		}
	})
}
