package graduate

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

var (
	sanadStatusTag  = "sanadstatus"
	sanadStatusText = "{0} must be one of Received, Not Yet Issued, Pending Collection"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(sanadStatusTag, sanadStatusValidation)
	core.RegisterCustomTranslation(validate, translator, sanadStatusTag, sanadStatusText)
}

func sanadStatusValidation(fl validator.FieldLevel) bool {
	return SanadStatus(fl.Field().String()).IsValid()
}
