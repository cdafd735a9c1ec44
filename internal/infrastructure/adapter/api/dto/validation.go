package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var categoryPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._:-]*$`)

// ValidateCategory is the "category" binding rule: a lower-case slug such as "tool.search"
func ValidateCategory(fl validator.FieldLevel) bool {
	return categoryPattern.MatchString(fl.Field().String())
}

// RegisterValidators installs the custom rules on gin's validator engine
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("category", ValidateCategory)
}
