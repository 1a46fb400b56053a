package service

import (
	"fmt"
	"strings"
	"unicode"

	"go-sales-network/pkg/validator"
)

// validateStruct runs the tag-based struct validation and converts the result
// into the field->messages shape used by the domain validators.
func validateStruct(data interface{}) ValidationError {
	errs := validator.ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	verrs := ValidationError{}
	for _, err := range errs {
		verrs.Add(jsonFieldName(err.FailedField), fmt.Sprintf("failed on the '%s' rule", err.Tag))
	}
	return verrs
}

// jsonFieldName maps a struct namespace like "SaleRequest.HouseNumber" to the
// wire name "house_number".
func jsonFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	field := parts[len(parts)-1]

	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
