package http

import (
	"errors"
	"fmt"
	"strings"

	"meatdelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs validator/v10 into echo's Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate reports the failed fields as one errs.ValueIsInvalidError.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", f.Namespace(), f.Tag()))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", errors.New(strings.Join(msgs, "; ")))
}
