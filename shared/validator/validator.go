package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"shoppinglist/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	// up to 10 integer digits and 2 fraction digits, the range of a NUMERIC(12,2) column
	priceRegex = regexp.MustCompile(`^\d{0,10}(\.\d{1,2})?$`)
)

func registerPriceValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok || str == "" || str == "." {
		return false
	}

	return priceRegex.MatchString(str)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("price", registerPriceValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
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
