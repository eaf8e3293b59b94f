package validation

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validateSize checks the length of strings, slices, maps and arrays against
// "min:max". Either bound may be omitted ("3:", ":10").
func validateSize(fl validator.FieldLevel) bool {
	minLen, maxLen, ok := parseBounds(fl.Param())
	if !ok {
		panic("validation: size needs min:max, got " + fl.Param())
	}

	var n int
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		n = utf8.RuneCountInString(field.String())
	case reflect.Slice, reflect.Map, reflect.Array:
		n = field.Len()
	default:
		return true
	}
	return n >= minLen && (maxLen < 0 || n <= maxLen)
}

func parseBounds(param string) (int, int, bool) {
	lo, hi, found := strings.Cut(param, ":")
	if !found {
		return 0, 0, false
	}
	minLen, maxLen := 0, -1
	var err error
	if lo != "" {
		if minLen, err = strconv.Atoi(lo); err != nil {
			return 0, 0, false
		}
	}
	if hi != "" {
		if maxLen, err = strconv.Atoi(hi); err != nil {
			return 0, 0, false
		}
	}
	return minLen, maxLen, true
}

func isNil(field reflect.Value) bool {
	switch field.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return field.IsNil()
	default:
		return false
	}
}

func validateNotNull(fl validator.FieldLevel) bool {
	return !isNil(fl.Field())
}

func validateNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if isNil(field) {
		return false
	}
	switch field.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	default:
		return true
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return validateNotEmpty(fl)
}

func (v *Validator) validatePattern(fl validator.FieldLevel) bool {
	re, ok := v.patterns[fl.Param()]
	if !ok {
		panic("validation: unknown pattern " + fl.Param())
	}
	if fl.Field().Kind() != reflect.String {
		return true
	}
	return re.MatchString(fl.Field().String())
}

func validateDigits(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	s := field.String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// sign builds a numeric check; non-numeric fields pass.
func sign(ok func(float64) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return ok(float64(field.Int()))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return ok(float64(field.Uint()))
		case reflect.Float32, reflect.Float64:
			return ok(field.Float())
		default:
			return true
		}
	}
}
