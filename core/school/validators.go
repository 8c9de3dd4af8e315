package school

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/staffroom/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "must be a day from Monday to Saturday"

	leaveDecisionTag  = "leavedecision"
	leaveDecisionText = "status must be one of approved or rejected"

	roleTag  = "role"
	roleText = "role must be one of Admin, Teacher or Principal"

	dateTag  = "datetime"
	dateText = "must be a date in the YYYY-MM-DD format"

	dateRangeTag  = "daterange"
	dateRangeText = "end date cannot be before start date"
)

// InitValidators registers the school validators and their translations.
// core.InitValidators must have been called on validate first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(leaveDecisionTag, leaveDecisionValidation)
	core.RegisterCustomTranslation(validate, translator, leaveDecisionTag, leaveDecisionText)

	_ = validate.RegisterValidation(roleTag, roleValidation)
	core.RegisterCustomTranslation(validate, translator, roleTag, roleText)

	core.RegisterCustomTranslation(validate, translator, dateTag, dateText, true)

	validate.RegisterStructValidation(leaveFormStructValidation, LeaveForm{})
	core.RegisterCustomTranslation(validate, translator, dateRangeTag, dateRangeText)
}

// Custom Validators

func weekdayValidation(fl validator.FieldLevel) bool {
	day := fl.Field().String()
	for _, d := range Weekdays {
		if day == d {
			return true
		}
	}
	return false
}

func leaveDecisionValidation(fl validator.FieldLevel) bool {
	return LeaveStatus(fl.Field().String()).IsDecision()
}

func roleValidation(fl validator.FieldLevel) bool {
	return Role(fl.Field().String()).IsValid()
}

// leaveFormStructValidation checks that a leave does not end before it starts.
// Unparsable dates are left to the datetime tag.
func leaveFormStructValidation(sl validator.StructLevel) {
	form := sl.Current().Interface().(LeaveForm)
	start, sErr := time.Parse(DateLayout, form.StartDate)
	end, eErr := time.Parse(DateLayout, form.EndDate)
	if sErr != nil || eErr != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(form.EndDate, "end_date", "EndDate", dateRangeTag, "")
	}
}
