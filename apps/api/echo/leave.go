package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

type leaveApi struct {
	svc      *school.Service
	validate *validator.Validate
}

func registerLeaveAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	api := leaveApi{svc: svc, validate: validate}

	lg := g.Group("/leave-requests")
	lg.GET("", api.query)
	lg.POST("", api.create, capabilityMiddleware(canRequestLeave))
	lg.PUT("/:id/status", api.decide, capabilityMiddleware(canApproveLeave))
}

// LeaveRow is a leave request with its teacher's name.
type LeaveRow struct {
	school.LeaveRequest
	TeacherName string `json:"teacher_name"`
}

func newLeaveRows(s school.State, reqs []school.LeaveRequest) []LeaveRow {
	rows := make([]LeaveRow, 0, len(reqs))
	for _, lr := range reqs {
		rows = append(rows, LeaveRow{LeaveRequest: lr, TeacherName: s.TeacherName(lr.TeacherID)})
	}
	return rows
}

func (api *leaveApi) query(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}
	return ctx.JSON(http.StatusOK, newLeaveRows(s, s.VisibleLeaveRequests()))
}

// create files a pending request on behalf of the acting teacher.
func (api *leaveApi) create(ctx echo.Context) error {
	var data school.LeaveForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LeaveForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr := getContextUser(ctx)
	req := data.Request(newIDFunc("LR"), usr.ID)
	if _, err := api.svc.Dispatch(school.AddLeaveRequest{Request: req}); err != nil {
		return errors.Wrap(err, "adding leave request")
	}
	return ctx.JSON(http.StatusCreated, LeaveRow{LeaveRequest: req, TeacherName: usr.Name})
}

func (api *leaveApi) decide(ctx echo.Context) error {
	var data school.LeaveDecisionForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LeaveDecisionForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	id := ctx.Param("id")
	s, err := api.svc.DecideLeave(id, data.Status)
	if err != nil {
		return errors.Wrap(err, "deciding leave request")
	}
	lr, ok := s.LeaveRequest(id)
	if !ok {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, LeaveRow{LeaveRequest: lr, TeacherName: s.TeacherName(lr.TeacherID)})
}
