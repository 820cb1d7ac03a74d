package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries field-level messages so the error handler can
// respond with 400 instead of 500.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}
