package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(queryTagName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// queryTagName reports fields by their query string name.
func queryTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("query"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}
