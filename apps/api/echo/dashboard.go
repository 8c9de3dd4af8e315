package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

func registerDashboardAPI(g *echo.Group) {
	g.GET("/dashboard", dashboard)
}

type (
	OverviewDashboard struct {
		Stats         school.OverviewStats `json:"stats"`
		Workloads     []school.Workload    `json:"workloads"`
		MonthlyLeaves []school.MonthCount  `json:"monthly_leaves"`
	}

	TeacherDashboard struct {
		Stats         school.TeacherStats `json:"stats"`
		LeaveRequests []LeaveRow          `json:"leave_requests"`
	}
)

// dashboard shows school-wide figures to those who can see all records, and a teacher their own.
func dashboard(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}

	if getContextCapabilities(ctx).CanViewAllRecords {
		return ctx.JSON(http.StatusOK, OverviewDashboard{
			Stats:         s.OverviewStats(),
			Workloads:     s.Workloads(),
			MonthlyLeaves: s.MonthlyApprovedLeaves(),
		})
	}
	return ctx.JSON(http.StatusOK, TeacherDashboard{
		Stats:         s.TeacherStats(s.CurrentUser.ID),
		LeaveRequests: newLeaveRows(s, s.VisibleLeaveRequests()),
	})
}
