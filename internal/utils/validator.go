package utils

import (
	"reflect"
	"strings"
	"time"
	"wine-diary/domain"

	"github.com/go-playground/validator/v10"
)

const MinVintage = 1900

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator returns a validator that reports fields by their JSON names
// and knows the "vocab" and "vintage" rules.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("vocab", validateVocab)
	_ = v.RegisterValidation("vintage", validateVintage)

	return v
}

// MaxVintage is the latest vintage accepted at the moment of the call.
func MaxVintage() int {
	return time.Now().Year() + 1
}

func validateVocab(fl validator.FieldLevel) bool {
	vocab, ok := domain.Vocabularies[fl.FieldName()]
	if !ok {
		return false
	}
	return vocab.Allows(fl.Field().String())
}

func validateVintage(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	return year >= MinVintage && year <= MaxVintage()
}
