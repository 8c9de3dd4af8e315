package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

var (
	contextStateKey        = "state"
	contextUserKey         = "user"
	contextCapabilitiesKey = "capabilities"

	errStateNotFoundInCtx = errors.New("state not found in echo.Context")
)

// sessionMiddleware loads the snapshot once per request and derives the acting user's capabilities from it.
func sessionMiddleware(svc *school.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			s, err := svc.Snapshot()
			if err != nil {
				return errors.Wrap(err, "loading snapshot")
			}
			ctx.Set(contextStateKey, s)
			ctx.Set(contextUserKey, s.CurrentUser)
			ctx.Set(contextCapabilitiesKey, school.CapabilitiesFor(s.CurrentUser.Role))
			return next(ctx)
		}
	}
}

// capabilityMiddleware lets the request through only when check passes for the acting user.
func capabilityMiddleware(check func(school.Capabilities) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if check(getContextCapabilities(ctx)) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

func getContextState(ctx echo.Context) (school.State, error) {
	if s, ok := ctx.Get(contextStateKey).(school.State); ok {
		return s, nil
	}
	return school.State{}, errStateNotFoundInCtx
}

func getContextUser(ctx echo.Context) school.CurrentUser {
	usr, _ := ctx.Get(contextUserKey).(school.CurrentUser)
	return usr
}

func getContextCapabilities(ctx echo.Context) school.Capabilities {
	caps, _ := ctx.Get(contextCapabilitiesKey).(school.Capabilities)
	return caps
}

func canManageTeachers(c school.Capabilities) bool  { return c.CanManageTeachers }
func canViewTeachers(c school.Capabilities) bool    { return c.CanViewTeachers }
func canViewReports(c school.Capabilities) bool     { return c.CanViewReports }
func canApproveLeave(c school.Capabilities) bool    { return c.CanApproveLeave }
func canRequestLeave(c school.Capabilities) bool    { return c.CanRequestLeave }
func canUploadTimetable(c school.Capabilities) bool { return c.CanUploadTimetable }
func canRecordLogs(c school.Capabilities) bool      { return c.CanRecordLogs }
