package utils

import (
	"patientor-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("entry_type", validateEntryType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEntryType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, entryType := range models.AllEntryTypes {
		if value == string(entryType) {
			return true
		}
	}
	return false
}
