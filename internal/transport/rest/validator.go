package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(payload any) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range validationErrors {
		fieldName := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errs[fieldName] = fmt.Sprintf("The %s field is required.", fe.Field())
		case "max":
			errs[fieldName] = fmt.Sprintf("The %s may not be greater than %s characters.", fe.Field(), fe.Param())
		case "bcp47_language_tag":
			errs[fieldName] = fmt.Sprintf("The %s must be a valid BCP 47 language tag.", fe.Field())
		default:
			errs[fieldName] = fmt.Sprintf("The %s field is invalid.", fe.Field())
		}
	}

	return errs
}
