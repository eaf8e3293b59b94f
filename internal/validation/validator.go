// Package validation wires go-playground/validator to the error taxonomy.
//
// Tags are named after the constraint vocabulary (size, notblank, pattern,
// positive, ...) so the failing tag is also the constraint name the taxonomy
// resolves. Failures come back as apperror failure categories: parameter
// structs yield *apperror.ConstraintViolationsError, bodies
// *apperror.FieldErrorsError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// Tag names registered on top of the validator built-ins (min, max, ...).
const (
	TagSize              = "size"
	TagNotNull           = "notnull"
	TagNotEmpty          = "notempty"
	TagNotBlank          = "notblank"
	TagPattern           = "pattern"
	TagDigits            = "digits"
	TagPositive          = "positive"
	TagPositiveOrZero    = "positiveorzero"
	TagNegative          = "negative"
	TagNegativeOrZero    = "negativeorzero"
	TagConditionalValues = "conditionalvalues"
)

// ConditionalValuesMessage is the default description of a failed conditionalvalues rule.
const ConditionalValuesMessage = "Conditional values not provided as expected"

// ConditionalValues is implemented by request types whose fields depend on each other.
type ConditionalValues interface {
	AreValid() bool
}

// Validator validates request structs. Configure it before serving; it is
// safe for concurrent use afterwards.
type Validator struct {
	validate  *validator.Validate
	patterns  map[string]*regexp.Regexp
	overrides map[string]apperror.Rule
}

// New returns a Validator with the constraint tags registered.
func New() *Validator {
	v := &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		patterns:  make(map[string]*regexp.Regexp),
		overrides: make(map[string]apperror.Rule),
	}

	v.validate.RegisterTagNameFunc(fieldName)

	must(v.validate.RegisterValidation(TagSize, validateSize))
	must(v.validate.RegisterValidation(TagNotNull, validateNotNull, true))
	must(v.validate.RegisterValidation(TagNotEmpty, validateNotEmpty, true))
	must(v.validate.RegisterValidation(TagNotBlank, validateNotBlank, true))
	must(v.validate.RegisterValidation(TagPattern, v.validatePattern))
	must(v.validate.RegisterValidation(TagDigits, validateDigits))
	must(v.validate.RegisterValidation(TagPositive, sign(func(n float64) bool { return n > 0 })))
	must(v.validate.RegisterValidation(TagPositiveOrZero, sign(func(n float64) bool { return n >= 0 })))
	must(v.validate.RegisterValidation(TagNegative, sign(func(n float64) bool { return n < 0 })))
	must(v.validate.RegisterValidation(TagNegativeOrZero, sign(func(n float64) bool { return n <= 0 })))

	code := apperror.ConditionalValuesIncorrect
	v.overrides[TagConditionalValues] = apperror.Rule{
		Constraint: TagConditionalValues,
		Code:       &code,
		Message:    ConditionalValuesMessage,
	}

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// RegisterPattern makes expr available as pattern=name.
func (v *Validator) RegisterPattern(name, expr string) error {
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("pattern %q: %w", name, err)
	}
	v.patterns[name] = re
	return nil
}

// Override attaches an error-code configuration to a rule. key is either a
// tag ("size") or a field-qualified tag ("SearchFlightsRequest.Origin#size");
// the qualified form wins. The Rule's Constraint defaults to the tag.
func (v *Validator) Override(key string, rule apperror.Rule) {
	if rule.Constraint == "" {
		rule.Constraint = key[strings.LastIndex(key, "#")+1:]
	}
	v.overrides[key] = rule
}

// RegisterConditionalValues enables the object-level conditionalvalues rule
// for the given struct types, which must implement ConditionalValues.
func (v *Validator) RegisterConditionalValues(types ...interface{}) {
	for _, t := range types {
		if _, ok := t.(ConditionalValues); !ok {
			panic(fmt.Sprintf("validation: %T does not implement ConditionalValues", t))
		}
	}
	v.validate.RegisterStructValidation(func(sl validator.StructLevel) {
		holder, ok := sl.Current().Interface().(ConditionalValues)
		if ok && !holder.AreValid() {
			sl.ReportError(nil, "", "", TagConditionalValues, "")
		}
	}, types...)
}

// Validate implements echo.Validator for request bodies.
func (v *Validator) Validate(i interface{}) error {
	fieldErrs, err := v.run(i)
	if err != nil || len(fieldErrs) == 0 {
		return err
	}

	out := &apperror.FieldErrorsError{Errors: make([]apperror.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, apperror.FieldError{Field: fe.Field(), Rule: v.ruleFor(fe)})
	}
	return out
}

// ValidateParams validates a struct bound from path and query parameters.
func (v *Validator) ValidateParams(i interface{}) error {
	fieldErrs, err := v.run(i)
	if err != nil || len(fieldErrs) == 0 {
		return err
	}

	out := &apperror.ConstraintViolationsError{Violations: make([]apperror.ConstraintViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, apperror.ConstraintViolation{Field: fe.Field(), Rule: v.ruleFor(fe)})
	}
	return out
}

func (v *Validator) run(i interface{}) (validator.ValidationErrors, error) {
	err := v.validate.Struct(i)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, nil
	}
	return nil, fmt.Errorf("validation: %w", err)
}

// ruleFor looks up the override of a failed rule, falling back to the tag.
func (v *Validator) ruleFor(fe validator.FieldError) apperror.Rule {
	if rule, ok := v.overrides[fe.StructNamespace()+"#"+fe.Tag()]; ok {
		return rule
	}
	if rule, ok := v.overrides[fe.Tag()]; ok {
		return rule
	}
	return apperror.Rule{Constraint: fe.Tag()}
}

// fieldName reports fields by their wire name: json, then query, then param tag.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
