package ballast

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Bind deserializes a merged result into T. Layers apply weakest to
// strongest: environment-file variables form the base (upper-snake env
// tags), the merged document overwrites them (keys matched through yaml
// tags, lower_snake), variables that were already set when the build started
// overwrite everything, defaults fill whatever is still zero, and the
// conf-tag constraints run last. A declared environment file can therefore
// supply values the documents omit, but only an operator-set variable
// overrides a document.
//
// Bind returns either a fully populated configuration or a typed error;
// never a partial value.
func Bind[T any](res *MergedResult, defaults *T) (*T, error) {
	cfg := new(T)

	base := res.env.Values()
	overlayEnvironment(base)
	if err := env.ParseWithOptions(cfg, env.Options{Environment: base}); err != nil {
		return nil, translateOverlayError(err)
	}

	if len(res.doc) > 0 {
		raw, err := yaml.Marshal(res.doc.Interface())
		if err != nil {
			return nil, fmt.Errorf("ballast: encode merged document: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				return nil, &ValidationError{FieldErrors: typeMismatchErrors(typeErr)}
			}
			return nil, fmt.Errorf("ballast: bind merged document: %w", err)
		}
	}

	overrides := res.env.Overrides()
	overlayEnvironment(overrides)
	if err := env.ParseWithOptions(cfg, env.Options{Environment: overrides}); err != nil {
		return nil, translateOverlayError(err)
	}

	if defaults != nil {
		if err := mergo.Merge(cfg, *defaults); err != nil {
			return nil, fmt.Errorf("ballast: apply defaults: %w", err)
		}
	}

	if fieldErrors := validateStruct(reflect.ValueOf(cfg).Elem()); len(fieldErrors) > 0 {
		return nil, &ValidationError{FieldErrors: fieldErrors}
	}

	return cfg, nil
}

// typeMismatchErrors converts yaml shape errors into field errors. The yaml
// messages carry line positions rather than field paths.
func typeMismatchErrors(err *yaml.TypeError) []FieldError {
	fieldErrors := make([]FieldError, 0, len(err.Errors))
	for _, msg := range err.Errors {
		fieldErrors = append(fieldErrors, FieldError{
			FieldPath: "document",
			Code:      ErrCodeTypeMismatch,
			Message:   msg,
		})
	}
	return fieldErrors
}

// translateOverlayError maps environment-overlay failures onto the field
// error taxonomy. Slice-shaped fields carry serialized array literals, so
// their failures are invalid_value; scalar conversions are type_mismatch.
func translateOverlayError(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("ballast: environment overlay: %w", err)
	}

	fieldErrors := make([]FieldError, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var parseErr env.ParseError
		if errors.As(e, &parseErr) {
			code := ErrCodeTypeMismatch
			if parseErr.Type != nil && parseErr.Type.Kind() == reflect.Slice {
				code = ErrCodeInvalidValue
			}
			fieldErrors = append(fieldErrors, FieldError{
				FieldPath: parseErr.Name,
				Code:      code,
				Message:   parseErr.Err.Error(),
			})
			continue
		}
		fieldErrors = append(fieldErrors, FieldError{
			FieldPath: "environment",
			Code:      ErrCodeInvalidValue,
			Message:   e.Error(),
		})
	}
	return &ValidationError{FieldErrors: fieldErrors}
}
