package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("view_kind", validateViewKind)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateViewKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "class" || value == "teacher"
}
