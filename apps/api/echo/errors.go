package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/announcement"
	"github.com/umairnumplate/noor-ul-masajid/core/fee"
	"github.com/umairnumplate/noor-ul-masajid/core/graduate"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
	"github.com/umairnumplate/noor-ul-masajid/core/tanzim"
	"github.com/umairnumplate/noor-ul-masajid/core/teacher"
)

var (
	errUnauthorized  = echo.NewHTTPError(http.StatusUnauthorized, "operator not authenticated")
	errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")

	notFoundErrs = []error{
		student.ErrNotFound,
		teacher.ErrNotFound,
		graduate.ErrNotFound,
		tanzim.ErrNotFound,
		fee.ErrNotFound,
		announcement.ErrNotFound,
	}
	badRequestErrs = []error{
		announcement.ErrEmptyTopic,
		announcement.ErrNoRecipients,
		tanzim.ErrNotImage,
	}
)

func isOneOf(err error, targets []error) bool {
	for _, target := range targets {
		if err == target {
			return true
		}
	}
	return false
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		origErr := errors.Cause(err)
		switch {
		case isOneOf(origErr, notFoundErrs):
			code = http.StatusNotFound
			message = origErr.Error()
		case isOneOf(origErr, badRequestErrs):
			code = http.StatusBadRequest
			message = origErr.Error()
		case origErr == announcement.ErrMalformedDraft:
			code = http.StatusBadGateway
			message = origErr.Error()
		}

		if code == 0 {
			switch e := origErr.(type) {
			case *echo.HTTPError:
				if e == middleware.ErrJWTMissing {
					code = http.StatusUnauthorized
					message = e.Message
					break
				}
				if e.Internal != nil {
					if herr, ok := e.Internal.(*echo.HTTPError); ok {
						e = herr
					}
				}
				code = e.Code
				message = e.Message
			case validator.ValidationErrors, *core.ValidationError:
				code = http.StatusBadRequest
				message = core.FieldErrors(e, translator)
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{"path": ctx.Path()})

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		} else if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
