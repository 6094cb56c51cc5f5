package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates s against its `validate` tags and returns an error with a
// readable message per failing field.
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %s", FormatValidationError(err))
	}
	return nil
}

// FormatValidationError joins validator field errors into one message.
func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be an absolute URL", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"ServerPort":     "PORT",
		"UploadURL":      "UPLOAD_URL",
		"RankingURL":     "RANKING_URL",
		"RequestTimeout": "REQUEST_TIMEOUT",
		"MaxFileSize":    "MAX_FILE_SIZE",
		"SessionTTL":     "SESSION_TTL",
		"MaxSessions":    "MAX_SESSIONS",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
