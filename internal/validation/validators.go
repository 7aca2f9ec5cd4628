package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("rfc3339", validateRFC3339); err != nil {
		panic(fmt.Sprintf("failed to register rfc3339 validator: %v", err))
	}
}

// validateRFC3339 checks that a string field is a parsable RFC3339 timestamp
func validateRFC3339(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

// TaskInput is the validated shape of an add or edit request.
type TaskInput struct {
	Description string `json:"description" validate:"required,min=1,max=2000"`
	StartTime   string `json:"startTime" validate:"required,rfc3339"`
	EndTime     string `json:"endTime" validate:"required,rfc3339"`
}

// ValidateTaskInput sanitizes and validates task fields. Beyond the struct
// tags it enforces that the end time is after the start time; both are
// compared as instants, so differing offsets are fine.
func ValidateTaskInput(in *TaskInput) error {
	in.Description = SanitizeText(in.Description)

	if err := Validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}

	start, _ := time.Parse(time.RFC3339, in.StartTime)
	end, _ := time.Parse(time.RFC3339, in.EndTime)
	if !end.After(start) {
		return fmt.Errorf("endTime must be after startTime")
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func fieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "rfc3339":
		return fmt.Errorf("%s must be an RFC3339 timestamp", field)
	case "max":
		return fmt.Errorf("%s exceeds the maximum length of %s", field, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}

// SanitizeText trims whitespace and strips control characters except
// newline and tab.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}
