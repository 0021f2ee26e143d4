package ballast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// validateStruct walks a bound configuration struct and applies each field's
// conf-tag constraints, recursing into nested and embedded structs.
func validateStruct(cfg reflect.Value) []FieldError {
	return validateStructPath(cfg, "")
}

func validateStructPath(cfg reflect.Value, parentPath string) []FieldError {
	if cfg.Kind() == reflect.Ptr {
		if cfg.IsNil() {
			return nil
		}
		cfg = cfg.Elem()
	}
	if cfg.Kind() != reflect.Struct {
		return nil
	}

	var fieldErrors []FieldError
	t := cfg.Type()
	for i := 0; i < cfg.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		value := cfg.Field(i)
		path := field.Name
		if parentPath != "" {
			path = parentPath + "." + field.Name
		}
		tags := parseTag(field.Tag.Get("conf"))

		// time.Time and friends are structs in shape only.
		if value.Kind() == reflect.Struct && field.Type.PkgPath() != "time" {
			// Promoted fields of an embedded struct report as top-level,
			// matching how callers address them.
			if field.Anonymous {
				path = parentPath
			}
			fieldErrors = append(fieldErrors, validateStructPath(value, path)...)
			continue
		}

		fieldErrors = append(fieldErrors, validateField(value, path, tags)...)
	}

	return fieldErrors
}

// validateField checks one field against its required, min, max, and oneof
// constraints. A zero non-required field skips the bound checks.
func validateField(value reflect.Value, path string, tags tagConfig) []FieldError {
	if isZeroValue(value) {
		if tags.required {
			return []FieldError{{
				FieldPath: path,
				Code:      ErrCodeRequired,
				Message:   "field is required but not provided",
			}}
		}
		return nil
	}

	var fieldErrors []FieldError
	fieldErrors = append(fieldErrors, validateBounds(value, path, tags)...)
	if len(tags.oneof) > 0 {
		fieldErrors = append(fieldErrors, validateOneof(value, path, tags)...)
	}
	return fieldErrors
}

// validateBounds applies min/max to numeric fields, and to string length for
// string fields.
func validateBounds(value reflect.Value, path string, tags tagConfig) []FieldError {
	if tags.min == "" && tags.max == "" {
		return nil
	}

	var n float64
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(value.Uint())
	case reflect.Float32, reflect.Float64:
		n = value.Float()
	case reflect.String:
		n = float64(len(value.String()))
	default:
		return nil
	}

	var fieldErrors []FieldError
	if tags.min != "" {
		if limit, err := strconv.ParseFloat(tags.min, 64); err == nil && n < limit {
			fieldErrors = append(fieldErrors, FieldError{
				FieldPath: path,
				Code:      ErrCodeMin,
				Message:   fmt.Sprintf("value %v is below minimum %v", n, limit),
			})
		}
	}
	if tags.max != "" {
		if limit, err := strconv.ParseFloat(tags.max, 64); err == nil && n > limit {
			fieldErrors = append(fieldErrors, FieldError{
				FieldPath: path,
				Code:      ErrCodeMax,
				Message:   fmt.Sprintf("value %v exceeds maximum %v", n, limit),
			})
		}
	}
	return fieldErrors
}

// validateOneof checks the field's string form against the allowed set.
func validateOneof(value reflect.Value, path string, tags tagConfig) []FieldError {
	valueStr := fmt.Sprint(value.Interface())
	for _, allowed := range tags.oneof {
		if valueStr == allowed {
			return nil
		}
	}
	return []FieldError{{
		FieldPath: path,
		Code:      ErrCodeOneOf,
		Message:   fmt.Sprintf("value %q must be one of: %s", valueStr, strings.Join(tags.oneof, ", ")),
	}}
}

// isZeroValue checks if a reflect.Value is the zero value for its type.
// Empty slices and maps count as zero regardless of nil-ness.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
