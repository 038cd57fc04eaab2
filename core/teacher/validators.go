package teacher

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "{0} must be a day of the week (Monday - Sunday)"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)
}

func weekdayValidation(fl validator.FieldLevel) bool {
	return Weekday(fl.Field().String()).IsValid()
}
