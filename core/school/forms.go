package school

import (
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/staffroom/core"
)

// Input payloads accepted from clients. Each one validates itself and converts to the
// record or action it stands for.
type (
	SwitchUserForm struct {
		Role Role   `json:"role" validate:"required,role"`
		ID   string `json:"id"`
	}

	TeacherForm struct {
		ID             string      `json:"id"`
		Name           string      `json:"name" validate:"required,notblank"`
		Email          string      `json:"email" validate:"required,email"`
		Subject        string      `json:"subject" validate:"required,notblank"`
		ClassTeacherOf null.String `json:"class_teacher_of"`
	}

	TimetableForm struct {
		Entries []TimetableEntry `json:"entries" validate:"required,dive"`
	}

	ParseTimetableForm struct {
		Text string `json:"text"`
	}

	LogForm struct {
		Date         string `json:"date" validate:"required,datetime=2006-01-02"`
		TeacherID    string `json:"teacher_id" validate:"required"`
		PeriodsTaken int    `json:"periods_taken" validate:"gte=0"`
		ProxyPeriods int    `json:"proxy_periods" validate:"gte=0"`
		OnLeave      bool   `json:"on_leave"`
	}

	LeaveForm struct {
		StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
		EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
		Reason    string `json:"reason" validate:"required,notblank"`
	}

	LeaveDecisionForm struct {
		Status LeaveStatus `json:"status" validate:"required,leavedecision"`
	}
)

func (f *SwitchUserForm) Validate(validate *validator.Validate) error {
	return validate.Struct(f)
}

func (f SwitchUserForm) Action() SwitchUser {
	return SwitchUser{Role: f.Role, ID: core.CleanString(f.ID)}
}

func (f *TeacherForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.Subject = core.CleanString(f.Subject)
	if f.ClassTeacherOf.Valid {
		f.ClassTeacherOf.String = core.CleanString(f.ClassTeacherOf.String)
		if f.ClassTeacherOf.String == "" {
			f.ClassTeacherOf = null.String{}
		}
	}
	return validate.Struct(f)
}

func (f TeacherForm) Teacher(id string) Teacher {
	return Teacher{
		ID:             id,
		Name:           f.Name,
		Email:          f.Email,
		Subject:        f.Subject,
		ClassTeacherOf: f.ClassTeacherOf,
	}
}

func (f *TimetableForm) Validate(validate *validator.Validate) error {
	for i := range f.Entries {
		f.Entries[i].Day = core.CleanString(f.Entries[i].Day)
		f.Entries[i].TeacherID = core.CleanString(f.Entries[i].TeacherID)
	}
	return validate.Struct(f)
}

func (f *LogForm) Validate(validate *validator.Validate) error {
	f.Date = core.CleanString(f.Date)
	f.TeacherID = core.CleanString(f.TeacherID)
	return validate.Struct(f)
}

func (f LogForm) Log(id string) DailyLog {
	return DailyLog{
		ID:           id,
		Date:         f.Date,
		TeacherID:    f.TeacherID,
		PeriodsTaken: f.PeriodsTaken,
		ProxyPeriods: f.ProxyPeriods,
		OnLeave:      f.OnLeave,
	}
}

func (f *LeaveForm) Validate(validate *validator.Validate) error {
	f.StartDate = core.CleanString(f.StartDate)
	f.EndDate = core.CleanString(f.EndDate)
	f.Reason = core.CleanString(f.Reason)
	return validate.Struct(f)
}

// Request builds a pending leave request for the teacher.
func (f LeaveForm) Request(id, teacherID string) LeaveRequest {
	return LeaveRequest{
		ID:        id,
		TeacherID: teacherID,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Reason:    f.Reason,
		Status:    LeavePending,
	}
}

func (f *LeaveDecisionForm) Validate(validate *validator.Validate) error {
	f.Status = LeaveStatus(core.CleanString(string(f.Status), true /* lower */))
	return validate.Struct(f)
}
