package timetablesvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"google.golang.org/genai"

	"github.com/trezcool/staffroom/core"
	"github.com/trezcool/staffroom/core/school"
)

var promptTmpl = template.Must(template.New("prompt").Parse(`
You are an intelligent timetable parsing assistant. Your task is to convert the following unstructured text, which describes a school timetable, into a structured JSON array.

Here is the list of available teachers and their unique IDs. You MUST use these exact IDs in the 'teacher_id' field of your JSON output.
{{range .Teachers}}- {{.Name}} (ID: {{.ID}})
{{end}}
Now, parse the following timetable text. Make sure every entry in the output array corresponds to a single class period and includes the correct teacher_id from the list above.

Timetable Text:
"""
{{.Text}}
"""
`))

var entriesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"day": {
				Type:        genai.TypeString,
				Description: "Day of the week (e.g., 'Monday', 'Tuesday').",
			},
			"period": {
				Type:        genai.TypeInteger,
				Description: "The period number, as an integer (e.g., 1, 2).",
			},
			"subject": {
				Type:        genai.TypeString,
				Description: "The subject being taught.",
			},
			"class_name": {
				Type:        genai.TypeString,
				Description: "The name of the class (e.g., '8-A', '10-C').",
			},
			"teacher_id": {
				Type:        genai.TypeString,
				Description: "The unique ID of the teacher, which will be matched later from a provided list.",
			},
		},
		Required: []string{"day", "period", "subject", "class_name", "teacher_id"},
	},
}

// contentGenerator is the part of the genai client the parser needs; *genai.Models satisfies it.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type geminiParser struct {
	models   contentGenerator
	model    string
	timeout  time.Duration
	validate *validator.Validate
	logger   core.Logger
}

var _ school.TimetableParser = (*geminiParser)(nil)

var errNoAPIKey = errors.New("API key is not set")

// NewGeminiParser returns a school.TimetableParser backed by the Gemini API.
// validate must have the school validators registered.
// Without an API key, every parse fails with a *school.ParseError.
func NewGeminiParser(
	ctx context.Context,
	conf *core.Config,
	validate *validator.Validate,
	logger core.Logger,
) (school.TimetableParser, error) {
	if strings.TrimSpace(conf.Gemini.APIKey) == "" {
		logger.Warn("gemini.apiKey is not set: timetable parsing is disabled")
		return unconfiguredParser{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  conf.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating genai client")
	}
	return newGeminiParser(client.Models, conf, validate, logger), nil
}

type unconfiguredParser struct{}

func (unconfiguredParser) ParseTimetable(context.Context, string, []school.TeacherRef) ([]school.TimetableEntry, error) {
	return nil, &school.ParseError{Err: errNoAPIKey}
}

func newGeminiParser(
	models contentGenerator,
	conf *core.Config,
	validate *validator.Validate,
	logger core.Logger,
) *geminiParser {
	return &geminiParser{
		models:   models,
		model:    conf.Gemini.Model,
		timeout:  conf.Gemini.Timeout,
		validate: validate,
		logger:   logger,
	}
}

// ParseTimetable asks the model for the entries described by text. Entries are only returned
// when every one of them is valid; teacher ids are not checked against teachers.
func (p *geminiParser) ParseTimetable(
	ctx context.Context,
	text string,
	teachers []school.TeacherRef,
) ([]school.TimetableEntry, error) {
	entries, err := p.parse(ctx, text, teachers)
	if err != nil {
		p.logger.Error(fmt.Sprintf("parsing timetable with Gemini: %v", err), err)
		return nil, &school.ParseError{Err: err}
	}
	return entries, nil
}

func (p *geminiParser) parse(
	ctx context.Context,
	text string,
	teachers []school.TeacherRef,
) ([]school.TimetableEntry, error) {
	var prompt strings.Builder
	data := map[string]interface{}{"Teachers": teachers, "Text": text}
	if err := promptTmpl.Execute(&prompt, data); err != nil {
		return nil, errors.Wrap(err, "rendering prompt")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.models.GenerateContent(ctx, p.model, genai.Text(prompt.String()), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   entriesSchema,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("response did not contain any text")
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return nil, errors.New("response did not contain any text")
	}

	var entries []school.TimetableEntry
	if err = json.Unmarshal([]byte(out), &entries); err != nil || entries == nil {
		return nil, errors.New("API did not return a valid array")
	}
	for i := range entries {
		entries[i].Day = core.CleanString(entries[i].Day)
		entries[i].TeacherID = core.CleanString(entries[i].TeacherID)
		if err = p.validate.Struct(entries[i]); err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
	}
	return entries, nil
}
