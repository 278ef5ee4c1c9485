// Package schemas declares one canonical shape per backend resource and
// the payloads derived from them. Parse decodes loosely typed backend JSON
// and rejects documents that do not fit the shape.
package schemas

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// Parse decodes raw into T and validates the result.
func Parse[T any](raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	if err := Validate(out); err != nil {
		return out, err
	}
	return out, nil
}

// Validate runs the struct rules of v. Slices are checked element by element.
func Validate(v interface{}) error {
	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Struct:
		return validate.Struct(value.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := Validate(value.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsValidationError separates shape mismatches from malformed JSON.
func IsValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
