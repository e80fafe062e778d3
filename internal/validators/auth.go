package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-shell/models"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// engine returns the process-wide validator. Field names in reported errors
// follow the json tag so they match the wire format.
func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// AuthValidator implements the Validator interface for the authentication
// request models: Credential, SignUpRequest and PasswordResetRequest.
type AuthValidator struct{}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (Go names, e.g. "Email") are checked.
//
// Returns ErrUnsupportedType for unknown models and FieldErrors when a rule
// fails.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Credential, *models.Credential,
		models.SignUpRequest, *models.SignUpRequest,
		models.PasswordResetRequest, *models.PasswordResetRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = engine().StructPartialCtx(ctx, obj, fields...)
	} else {
		err = engine().StructCtx(ctx, obj)
	}

	return toFieldErrors(err)
}

// Var validates a single value against a validator tag such as "required".
// A failure is reported as FieldErrors keyed by name.
func Var(name string, value any, tag string) error {
	if err := engine().Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			out := FieldErrors{}
			for _, fe := range verrs {
				out[name] = append(out[name], fe.Tag())
			}
			return out
		}
		return err
	}
	return nil
}

func toFieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
