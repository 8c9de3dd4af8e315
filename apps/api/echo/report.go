package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core"
	"github.com/trezcool/staffroom/core/school"
)

var errInvalidMonth = "month must be a number from 1 to 12"

func registerReportAPI(g *echo.Group) {
	g.GET("/reports", report, capabilityMiddleware(canViewReports))
}

type ReportFilter struct {
	TeacherID string `query:"teacher_id"`
	Month     string `query:"month"`
}

func (f ReportFilter) LogFilter() (school.LogFilter, error) {
	filter := school.LogFilter{TeacherID: core.CleanString(f.TeacherID)}
	if month := core.CleanString(f.Month); month != "" {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return school.LogFilter{}, core.NewValidationError(nil, core.FieldError{Field: "month", Error: errInvalidMonth})
		}
		tm := time.Month(m)
		filter.Month = &tm
	}
	return filter, nil
}

// report lists the logs matching the optional teacher and month filters.
func report(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}

	var query ReportFilter
	if err = ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to ReportFilter")
	}
	filter, err := query.LogFilter()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newLogRows(s, s.FilterLogs(filter)))
}
