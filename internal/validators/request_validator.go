package validators

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-study-buddy/models"
)

// MinTextLength is the minimum number of characters, after trimming, that a
// text must have to be processed.
const MinTextLength = 30

const studyTextTag = "studytext"

// RequestValidator validates the auth and study request payloads using the
// `validate` struct tags declared on the models.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom study
// rules registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(studyTextTag, func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= MinTextLength
	})

	return &RequestValidator{validate: v}
}

func (r *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.VerifyRequest, models.ProcessRequest:
		return r.validateStruct(value, fields...)
	case *models.RegisterRequest:
		return r.validateStruct(*value, fields...)
	case *models.LoginRequest:
		return r.validateStruct(*value, fields...)
	case *models.VerifyRequest:
		return r.validateStruct(*value, fields...)
	case *models.ProcessRequest:
		return r.validateStruct(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (r *RequestValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = r.validate.Struct(obj)
	} else {
		err = r.validate.StructPartial(obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return ErrUnknownField
	}
	return toSentinel(validationErrors[0])
}

// toSentinel maps the first failed rule to one of the package errors.
func toSentinel(fe validator.FieldError) error {
	field, _, _ := strings.Cut(fe.StructField(), "[")

	switch field {
	case "Name":
		if fe.Tag() == "max" {
			return ErrNameTooLong
		}
		return ErrEmptyName
	case "Email":
		if fe.Tag() == "required" {
			return ErrEmptyEmail
		}
		return ErrInvalidEmail
	case "Password":
		if fe.Tag() == "required" {
			return ErrEmptyPassword
		}
		return ErrPasswordTooShort
	case "Token":
		return ErrEmptyToken
	case "Text":
		return ErrTextTooShort
	case "Features":
		if fe.Tag() == "oneof" {
			return ErrUnknownFeature
		}
		return ErrNoFeaturesRequested
	default:
		return ErrUnknownField
	}
}
