package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct valida los tags `validate` de un DTO y devuelve un mapa
// campo → mensaje legible. Devuelve nil si la estructura es válida.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			errs[fe.Field()] = message(fe)
		}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es requerido"
	case "email":
		return "formato de email inválido"
	case "min":
		return fmt.Sprintf("longitud mínima %s", fe.Param())
	case "max":
		return fmt.Sprintf("longitud máxima %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "oneof":
		return "debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "debe ser un UUID válido"
	default:
		return fmt.Sprintf("campo %s inválido", fe.Field())
	}
}

// Format aplana el mapa de errores en un solo string determinístico
// (campos en orden alfabético), apto para ErrorResponse.Message.
func Format(errs map[string]string) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, errs[f]))
	}
	return strings.Join(msgs, "; ")
}
