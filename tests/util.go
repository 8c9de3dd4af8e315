package testutil

import (
	"context"
	"io"
	"log"
	"net/mail"
	"sync"
	"testing"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/staffroom/core"
	"github.com/trezcool/staffroom/core/school"
	"github.com/trezcool/staffroom/services/email"
	"github.com/trezcool/staffroom/services/logger"
	"github.com/trezcool/staffroom/storage/database/inmem"
)

// Config returns the configuration used across tests; nothing is read from the environment.
func Config() *core.Config {
	return &core.Config{
		Env:              "TEST",
		Build:            "test",
		AppName:          "Staffroom",
		TestMode:         true,
		DefaultFromEmail: mail.Address{Name: "Staffroom", Address: "noreply@staffroom.test"},
		Server: core.ServerConfig{
			Address:         ":0",
			Host:            "localhost",
			ShutdownTimeout: time.Second,
			DisableReqLogs:  true,
		},
		Gemini: core.GeminiConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 5 * time.Second,
		},
	}
}

// NewLogger returns a silent logger with error reporting disabled.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "TEST : ", 0), conf)
	logger.Enable(false)
	return logger
}

// NewValidator returns a validator with the core and school validators registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	school.InitValidators(validate, translator)
	return validate, translator
}

// NewService returns a school.Service over a fresh seeded in-memory store.
// Emails are sent synchronously and recorded by the console mock.
func NewService(t *testing.T, parser school.TimetableParser) (*school.Service, school.Repository) {
	t.Helper()
	conf := Config()
	logger := NewLogger(conf)
	repo := inmemdb.NewStateRepository(inmemdb.Open(school.SeedState()))
	emailsvc.ResetSentMessages()
	return school.NewService(repo, parser, emailsvc.NewConsoleServiceMock(conf, logger), logger), repo
}

// FakeParser is a school.TimetableParser returning canned results.
type FakeParser struct {
	mu       sync.Mutex
	Entries  []school.TimetableEntry
	Err      error
	Calls    int
	Text     string
	Teachers []school.TeacherRef
}

var _ school.TimetableParser = (*FakeParser)(nil)

func (p *FakeParser) ParseTimetable(_ context.Context, text string, teachers []school.TeacherRef) ([]school.TimetableEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls++
	p.Text = text
	p.Teachers = teachers
	if p.Err != nil {
		return nil, p.Err
	}
	return append([]school.TimetableEntry{}, p.Entries...), nil
}

// Dispatch applies act and fails the test on error.
func Dispatch(t *testing.T, svc *school.Service, act school.Action) school.State {
	t.Helper()
	s, err := svc.Dispatch(act)
	if err != nil {
		t.Fatalf("Dispatch(%s) failed: %v", act.Kind(), err)
	}
	return s
}
