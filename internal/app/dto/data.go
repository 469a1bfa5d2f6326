package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/ijalalfrz/travel-plan-optimizer/internal/pkg/itinerary"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// InitValidator registers the English translations, json field names in
// messages and the category tag.
func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return itinerary.Category(fl.Field().String()).Valid()
	})
	if err != nil {
		return err
	}

	return Validate.RegisterTranslation("category", trans,
		func(ut ut.Translator) error {
			return ut.Add("category", "{0} must be one of flight, hotel or activity", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("category", fe.Field())
			return t
		},
	)
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
