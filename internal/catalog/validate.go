package catalog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation failures, reported one at a time in this order.
var (
	ErrFieldsRequired  = errors.New("all fields are required")
	ErrNameLetters     = errors.New("name must contain letters only")
	ErrCategoryLetters = errors.New("category must contain letters only")
	ErrPriceInvalid    = errors.New("price must be a valid integer greater than zero")
)

// lettersOnly accepts ASCII letters and the same whitespace as a browser's \s,
// which covers the Unicode space separators as well.
var lettersOnly = regexp.MustCompile(`^[A-Za-z\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersOnly.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("catalog: register letters validation: " + err.Error())
	}
	return v
}

// Validate checks a draft and returns the patch to store. Only the first
// failing rule is returned.
func Validate(d Draft) (Patch, error) {
	name := strings.TrimSpace(d.Name)
	category := strings.TrimSpace(d.Category)
	rawPrice := strings.TrimSpace(d.Price)

	for _, field := range []string{name, category, rawPrice} {
		if validate.Var(field, "required") != nil {
			return Patch{}, ErrFieldsRequired
		}
	}

	// The letters rule runs on the raw input; surrounding whitespace is allowed.
	if validate.Var(d.Name, "letters") != nil {
		return Patch{}, ErrNameLetters
	}
	if validate.Var(d.Category, "letters") != nil {
		return Patch{}, ErrCategoryLetters
	}

	price, err := strconv.ParseInt(rawPrice, 10, 64)
	if err != nil || validate.Var(price, "gt=0") != nil {
		return Patch{}, ErrPriceInvalid
	}

	return Patch{Name: name, Category: category, Price: price}, nil
}

// IsValidationError reports whether err is one of the user-facing validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrNameLetters) ||
		errors.Is(err, ErrCategoryLetters) ||
		errors.Is(err, ErrPriceInvalid)
}
