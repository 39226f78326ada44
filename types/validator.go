package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var converters = map[string]func(string) (interface{}, error){}

func RegisterConverter[T any](zero T, converter func(string) (T, error)) {
	converters[fmt.Sprintf("%T", zero)] = func(s string) (interface{}, error) {
		return converter(s)
	}
}

func init() {
	// string
	RegisterConverter("", func(s string) (string, error) {
		return s, nil
	})
	// int
	RegisterConverter(int(0), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
	// float64
	RegisterConverter(float64(0), func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	})
	// bool
	RegisterConverter(false, func(s string) (bool, error) {
		return strconv.ParseBool(s)
	})
}

type Validator[T any] interface {
	Validate(T) error
	Convert(string) (T, error)
}

type ValidatorFunction[T any] func(T) error

func MultiValidator[T any](validators ...Validator[T]) Validator[T] {
	return ValidatorFunction[T](func(item T) error {
		for _, validator := range validators {
			if err := validator.Validate(item); err != nil {
				if errors.Is(err, ErrValidtorStopValidation) {
					return nil
				}

				return err
			}
		}

		return nil
	})
}

// AliasValidator rejects tokens containing whitespace, since such a token
// never arrives from a shell as a single argument.
func AliasValidator(name string) Validator[string] {
	if name == "" {
		name = "alias"
	}

	return ValidatorFunction[string](func(s string) error {
		if strings.IndexFunc(s, unicode.IsSpace) != -1 {
			return fmt.Errorf("%s %q %s", name, s, ErrInvalidAlias.Error())
		}

		return nil
	})
}

func ArityValidator(name string) Validator[int] {
	if name == "" {
		name = "values"
	}

	return ValidatorFunction[int](func(n int) error {
		if n < 0 {
			return fmt.Errorf("%s %s", name, ErrInvalidArity.Error())
		}

		return nil
	})
}

func EmptyValidator[T comparable](name string, empty bool) Validator[T] {
	if name == "" {
		name = "value"
	}

	return ValidatorFunction[T](func(s T) error {
		var a T

		if empty {
			if s != a {
				return fmt.Errorf("%s must be empty", name)
			}
		} else {
			if s == a {
				return fmt.Errorf("%s cannot be empty", name)
			}
		}

		return nil
	})
}

func (v ValidatorFunction[T]) Validate(val T) error {
	return v(val)
}

func (v ValidatorFunction[T]) Convert(val string) (T, error) {
	var zero T

	converter, ok := converters[fmt.Sprintf("%T", zero)]
	if !ok {
		return zero, fmt.Errorf("no converter for %T", zero)
	}

	ret, err := converter(val)
	if err != nil {
		return zero, err
	}

	return ret.(T), nil
}
