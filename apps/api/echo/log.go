package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

type logApi struct {
	svc      *school.Service
	validate *validator.Validate
}

func registerLogAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	api := logApi{svc: svc, validate: validate}

	lg := g.Group("/logs")
	lg.GET("", api.query)
	lg.POST("", api.create, capabilityMiddleware(canRecordLogs))
}

// LogRow is a daily log with its teacher's name.
type LogRow struct {
	school.DailyLog
	TeacherName string `json:"teacher_name"`
}

func newLogRows(s school.State, logs []school.DailyLog) []LogRow {
	rows := make([]LogRow, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, LogRow{DailyLog: l, TeacherName: s.TeacherName(l.TeacherID)})
	}
	return rows
}

// query lists the logs visible to the acting user.
func (api *logApi) query(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}
	return ctx.JSON(http.StatusOK, newLogRows(s, s.VisibleLogs()))
}

func (api *logApi) create(ctx echo.Context) error {
	var data school.LogForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LogForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	log := data.Log(newIDFunc("L"))
	s, err := api.svc.Dispatch(school.AddLog{Log: log})
	if err != nil {
		return errors.Wrap(err, "adding log")
	}
	return ctx.JSON(http.StatusCreated, LogRow{DailyLog: log, TeacherName: s.TeacherName(log.TeacherID)})
}
