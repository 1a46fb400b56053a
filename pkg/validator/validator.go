// Package validator wraps go-playground struct validation with the custom
// rules the request payloads rely on.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse is one failed rule: the struct namespace of the field and the
// tag that rejected it.
type ErrorResponse struct {
	FailedField string
	Tag         string
}

var validate = validator.New()

func init() {
	// uuid_required rejects the zero UUID, which `required` alone lets
	// through for value-typed id fields.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct runs the tag-based rules and returns one entry per failure,
// or nil when the struct is valid.
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fieldErr.StructNamespace(),
				Tag:         fieldErr.Tag(),
			})
		}
	}
	return errs
}
