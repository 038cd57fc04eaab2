package assist

import (
	"context"
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Model selects the remote text-generation model.
type Model string

const (
	ModelPro   Model = "gemini-3-pro-preview"
	ModelFlash Model = "gemini-2.5-flash"
)

// Messages returned in place of generated text. Generate never fails: callers show whatever it returns.
const (
	MsgUnavailable = "AI features are unavailable. Please configure your API key."
	MsgFailed      = "An error occurred while communicating with the AI. Please check the console for details."
	MsgEmpty       = "Sorry, the AI couldn't generate a response. Please try again."
)

// Generator produces text from a prompt. Each call is one independent remote request.
type Generator interface {
	IsAvailable() bool
	Generate(ctx context.Context, model Model, prompt string) string
}

// IsFallback reports whether `text` is one of the fixed messages rather than generated content.
func IsFallback(text string) bool {
	return text == MsgUnavailable || text == MsgFailed || text == MsgEmpty
}

var fenceRegex = regexp.MustCompile("```(json)?")

// StripFences removes every ``` and ```json marker from `text` and trims the result.
func StripFences(text string) string {
	return strings.TrimSpace(fenceRegex.ReplaceAllString(text, ""))
}

var ErrMalformed = errors.New("malformed generated JSON")

// ParseJSON decodes `text` into a T and checks that every field tagged `assist:"required"`
// is non-zero. Any failure is reported as ErrMalformed.
func ParseJSON[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, errors.Wrap(ErrMalformed, err.Error())
	}

	rv := reflect.Indirect(reflect.ValueOf(&v))
	if rv.Kind() != reflect.Struct {
		return v, nil
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).Tag.Get("assist") != "required" {
			continue
		}
		if rv.Field(i).IsZero() {
			return v, errors.Wrapf(ErrMalformed, "missing %s", jsonName(rt.Field(i)))
		}
	}
	return v, nil
}

func jsonName(fld reflect.StructField) string {
	if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" {
		return name
	}
	return fld.Name
}
