package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core/school"
)

type sessionApi struct {
	svc      *school.Service
	validate *validator.Validate
}

func registerSessionAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	api := sessionApi{svc: svc, validate: validate}

	sg := g.Group("/session")
	sg.GET("", api.retrieve)
	sg.PUT("", api.switchUser)
}

type SessionResponse struct {
	User         school.CurrentUser  `json:"user"`
	Capabilities school.Capabilities `json:"capabilities"`
}

func newSessionResponse(usr school.CurrentUser) SessionResponse {
	return SessionResponse{User: usr, Capabilities: school.CapabilitiesFor(usr.Role)}
}

func (api *sessionApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, newSessionResponse(getContextUser(ctx)))
}

// switchUser replaces the acting user; the role is self-selected.
func (api *sessionApi) switchUser(ctx echo.Context) error {
	var data school.SwitchUserForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SwitchUserForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Dispatch(data.Action())
	if err != nil {
		return errors.Wrap(err, "switching user")
	}
	return ctx.JSON(http.StatusOK, newSessionResponse(s.CurrentUser))
}
