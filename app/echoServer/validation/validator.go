package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/stefa-ie/buecheria-library-app/util/apperr"
)

// Validator adapts validator.Validate to echo and to the service error codes.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.v.Struct(i); err != nil {
		return apperr.Wrap(apperr.ErrValidation, Describe(err), err)
	}
	return nil
}

// Bind decodes the request into dst and validates it.
func Bind(c echo.Context, v *Validator, dst any) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return apperr.Wrap(apperr.ErrValidation, fmt.Sprintf("invalid body: %v", he.Message), err)
		}
		return apperr.Wrap(apperr.ErrValidation, "invalid body", err)
	}
	return v.Validate(dst)
}

// Describe flattens validator errors into one line, e.g.
// "Email: email; LastName: required".
func Describe(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		p := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			p += "=" + fe.Param()
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "; ")
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Newf(apperr.ErrValidation, "invalid %s", name)
	}
	return id, nil
}
