package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

var (
	classIDTag  = "classid"
	classIDText = "{0} must reference a known class"

	trackTag  = "track"
	trackText = "{0} must be one of Hifz, Dars-e-Nizami"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(classIDTag, classIDValidation)
	core.RegisterCustomTranslation(validate, translator, classIDTag, classIDText)

	_ = validate.RegisterValidation(trackTag, trackValidation)
	core.RegisterCustomTranslation(validate, translator, trackTag, trackText)
}

func classIDValidation(fl validator.FieldLevel) bool {
	return IsKnown(fl.Field().String())
}

func trackValidation(fl validator.FieldLevel) bool {
	return Track(fl.Field().String()).IsValid()
}
