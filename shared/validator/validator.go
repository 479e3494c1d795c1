package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"timevault/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *val.Validate

// layoutProbe has a distinct value in every field so a layout that drops or repeats a field is caught.
// The zone is named so that layouts with an abbreviation ("MST") parse back.
var layoutProbe = time.Date(2001, time.February, 3, 16, 5, 6, 789000000, time.FixedZone("MST", -7*60*60))

// IsTimeLayout reports whether layout is a usable Go reference layout: it must reference at least
// one time element and parse back what it formats.
func IsTimeLayout(layout string) bool {
	if strings.TrimSpace(layout) == "" {
		return false
	}

	formatted := layoutProbe.Format(layout)
	if formatted == layout {
		return false
	}

	_, err := time.Parse(layout, formatted)

	return err == nil
}

func registerTimeLayoutValidation(field val.FieldLevel) bool {
	layout, ok := field.Field().Interface().(string)

	return ok && IsTimeLayout(layout)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timelayout", registerTimeLayoutValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads a JSON body into data without validating it, for requests that apply
// defaults before validation.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
