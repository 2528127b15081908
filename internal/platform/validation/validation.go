package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Messages maps a failed field to the text shown for it. A "field.tag" key
// overrides the plain "field" key for that tag.
type Messages map[string]string

// Fields turns the validator's errors into field messages. It returns nil
// when err is not a validation failure.
func Fields(err error, messages Messages) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = fe.Error()
		}
	}
	return out
}
