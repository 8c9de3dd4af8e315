package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/staffroom/core"
	"github.com/trezcool/staffroom/core/school"
)

type teacherApi struct {
	svc      *school.Service
	validate *validator.Validate
}

func registerTeacherAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	api := teacherApi{svc: svc, validate: validate}

	tg := g.Group("/teachers")
	tg.GET("", api.query, capabilityMiddleware(canViewTeachers))
	tg.POST("", api.create, capabilityMiddleware(canManageTeachers))
	tg.PUT("/:id", api.update, capabilityMiddleware(canManageTeachers))
	tg.DELETE("/:id", api.destroy, capabilityMiddleware(canManageTeachers))
}

func (api *teacherApi) query(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}
	return ctx.JSON(http.StatusOK, s.Teachers)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data school.TeacherForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	id := core.CleanString(data.ID)
	if id == "" {
		id = newIDFunc("T")
	}
	teacher := data.Teacher(id)
	if _, err := api.svc.Dispatch(school.AddTeacher{Teacher: teacher}); err != nil {
		if errors.Cause(err) == school.ErrDuplicateID {
			return core.NewValidationError(nil, core.FieldError{Field: "id", Error: school.ErrDuplicateID.Error()})
		}
		return errors.Wrap(err, "adding teacher")
	}
	return ctx.JSON(http.StatusCreated, teacher)
}

// update replaces the teacher's details; the id in the body is ignored.
func (api *teacherApi) update(ctx echo.Context) error {
	var data school.TeacherForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	teacher := data.Teacher(ctx.Param("id"))
	if _, err := api.svc.Dispatch(school.UpdateTeacher{Teacher: teacher}); err != nil {
		return errors.Wrap(err, "updating teacher")
	}
	return ctx.JSON(http.StatusOK, teacher)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.Dispatch(school.DeleteTeacher{ID: ctx.Param("id")}); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}
