package school

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core"
)

var errNoTimetableText = errors.New("Please paste timetable data.")

var leaveDecisionTmpl = `Hello {{.Name}},

Your leave request from {{.StartDate}} to {{.EndDate}} has been {{.Status}}.
`

type (
	// Repository holds the current snapshot for the lifetime of the process.
	Repository interface {
		LoadState() (State, error)
		SaveState(s State) error
	}

	// TimetableParser turns free-form timetable text into entries, given the known teachers.
	// Any failure is reported as a *ParseError.
	TimetableParser interface {
		ParseTimetable(ctx context.Context, text string, teachers []TeacherRef) ([]TimetableEntry, error)
	}

	Service struct {
		mu      sync.Mutex // single writer
		repo    Repository
		parser  TimetableParser
		mailSvc core.EmailService
		logger  core.Logger
	}
)

func NewService(repo Repository, parser TimetableParser, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		repo:    repo,
		parser:  parser,
		mailSvc: mailSvc,
		logger:  logger,
	}
}

// Snapshot returns a copy of the current state.
func (svc *Service) Snapshot() (State, error) {
	s, err := svc.repo.LoadState()
	if err != nil {
		return State{}, errors.Wrap(err, "loading state")
	}
	return s.Clone(), nil
}

// Dispatch is the only way to change the state. Dispatches are applied one at a time; a failed
// action leaves the state as it was.
func (svc *Service) Dispatch(act Action) (State, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	s, err := svc.repo.LoadState()
	if err != nil {
		return State{}, errors.Wrap(err, "loading state")
	}
	next, err := Reduce(s, act)
	if err != nil {
		return s.Clone(), err
	}
	if err = svc.repo.SaveState(next); err != nil {
		return s.Clone(), errors.Wrap(err, "saving state")
	}
	return next.Clone(), nil
}

// ImportTimetable parses text against the current teachers and replaces the timetable with
// the result. Nothing is dispatched when parsing fails.
func (svc *Service) ImportTimetable(ctx context.Context, text string) (State, error) {
	if strings.TrimSpace(text) == "" {
		return State{}, core.NewValidationError(nil, core.FieldError{Field: "text", Error: errNoTimetableText.Error()})
	}
	s, err := svc.Snapshot()
	if err != nil {
		return State{}, err
	}

	entries, err := svc.parser.ParseTimetable(ctx, text, s.TeacherRefs())
	if err != nil {
		return s, err
	}
	return svc.Dispatch(SetTimetable{Entries: entries})
}

// DecideLeave approves or rejects a pending leave request and notifies the teacher by email.
func (svc *Service) DecideLeave(id string, status LeaveStatus) (State, error) {
	s, err := svc.Dispatch(UpdateLeaveStatus{ID: id, Status: status})
	if err != nil {
		return s, err
	}

	lr, _ := s.LeaveRequest(id)
	t, ok := s.Teacher(lr.TeacherID)
	if !ok || t.Email == "" {
		svc.logger.Warn(fmt.Sprintf("leave request %s: no teacher email to notify", id))
		return s, nil
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: t.Name, Address: t.Email}},
		Subject:      "Leave request " + string(status),
		TemplateText: leaveDecisionTmpl,
		TemplateData: map[string]interface{}{
			"Name":      t.Name,
			"StartDate": lr.StartDate,
			"EndDate":   lr.EndDate,
			"Status":    status,
		},
	})
	return s, nil
}
