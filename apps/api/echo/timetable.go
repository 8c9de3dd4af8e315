package echoapi

import (
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/staffroom/core/school"
)

// minSuggestionRatio is the similarity above which a known teacher is suggested for an unknown id.
const minSuggestionRatio = 0.7

type timetableApi struct {
	svc      *school.Service
	validate *validator.Validate
}

func registerTimetableAPI(g *echo.Group, svc *school.Service, validate *validator.Validate) {
	api := timetableApi{svc: svc, validate: validate}

	tg := g.Group("/timetable")
	tg.GET("", api.retrieve)
	tg.PUT("", api.replace, capabilityMiddleware(canUploadTimetable))
	tg.POST("/parse", api.parse, capabilityMiddleware(canUploadTimetable))
}

type (
	TimetableResponse struct {
		Entries []school.TimetableEntry `json:"entries"`
		Grid    school.TimetableGrid    `json:"grid"`
	}

	ParseTimetableResponse struct {
		Entries           []school.TimetableEntry `json:"entries"`
		UnknownTeacherIDs []string                `json:"unknown_teacher_ids"`
		Suggestions       map[string]string       `json:"suggestions"`
	}
)

func newTimetableResponse(s school.State) TimetableResponse {
	return TimetableResponse{Entries: s.Timetable, Grid: s.TimetableGrid()}
}

func (api *timetableApi) retrieve(ctx echo.Context) error {
	s, err := getContextState(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context state")
	}
	return ctx.JSON(http.StatusOK, newTimetableResponse(s))
}

func (api *timetableApi) replace(ctx echo.Context) error {
	var data school.TimetableForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TimetableForm")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	s, err := api.svc.Dispatch(school.SetTimetable{Entries: data.Entries})
	if err != nil {
		return errors.Wrap(err, "setting timetable")
	}
	return ctx.JSON(http.StatusOK, newTimetableResponse(s))
}

// parse imports a free-text timetable. Entries are stored as returned by the parser; ids that
// match no teacher are only reported.
func (api *timetableApi) parse(ctx echo.Context) error {
	var data school.ParseTimetableForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ParseTimetableForm")
	}

	s, err := api.svc.ImportTimetable(ctx.Request().Context(), data.Text)
	if err != nil {
		return errors.Wrap(err, "importing timetable")
	}

	unknown, suggestions := crossCheckTeachers(s)
	return ctx.JSON(http.StatusOK, ParseTimetableResponse{
		Entries:           s.Timetable,
		UnknownTeacherIDs: unknown,
		Suggestions:       suggestions,
	})
}

// crossCheckTeachers lists the timetable's teacher ids that match no teacher, and for each the
// most similar teacher id, when one is similar enough by id or name.
func crossCheckTeachers(s school.State) ([]string, map[string]string) {
	unknown := make([]string, 0)
	suggestions := make(map[string]string)
	seen := make(map[string]bool)
	for _, e := range s.Timetable {
		if seen[e.TeacherID] {
			continue
		}
		seen[e.TeacherID] = true
		if _, ok := s.Teacher(e.TeacherID); ok {
			continue
		}
		unknown = append(unknown, e.TeacherID)

		var best float64
		for _, t := range s.Teachers {
			for _, candidate := range []string{t.ID, t.Name} {
				if r := similarity(e.TeacherID, candidate); r >= minSuggestionRatio && r > best {
					best = r
					suggestions[e.TeacherID] = t.ID
				}
			}
		}
	}
	sort.Strings(unknown)
	return unknown, suggestions
}

func similarity(a, b string) float64 {
	m := difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	)
	return m.Ratio()
}
