package classifier

import (
	"errors"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// Category names a failure category in the dispatch table.
type Category string

const (
	CategoryNotFound             Category = "not-found"
	CategoryConstraintViolations Category = "constraint-violations"
	CategoryMalformedBody        Category = "malformed-body"
	CategoryFieldErrors          Category = "field-errors"
	CategoryMissingParameter     Category = "missing-parameter"
	CategoryMissingHeader        Category = "missing-header"
	CategoryBindingFailure       Category = "binding-failure"
	CategoryTypeMismatch         Category = "type-mismatch"
	CategoryMethodNotAllowed     Category = "method-not-allowed"
	CategoryUnsupportedMedia     Category = "unsupported-media-type"
	CategoryIOFailure            Category = "io-failure"
	CategoryRoute                Category = "route"
	CategoryUnhandled            Category = "unhandled"
)

// Rule binds a category to the classifier that handles it.
type Rule struct {
	Category Category
	Match    func(err error) bool
	Classify func(err error) Resolution
}

// on builds a rule matching any error that errors.As can convert to T.
func on[T error](category Category, classify func(T) Resolution) Rule {
	return Rule{
		Category: category,
		Match: func(err error) bool {
			var target T
			return errors.As(err, &target)
		},
		Classify: func(err error) Resolution {
			var target T
			errors.As(err, &target)
			return classify(target)
		},
	}
}

// DefaultRules returns the dispatch table in precedence order. The catch-all
// is always last.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: CategoryNotFound,
			Match: func(err error) bool {
				var signal apperror.NotFoundSignal
				return errors.As(err, &signal)
			},
			Classify: NotFound,
		},
		on(CategoryConstraintViolations, ConstraintViolations),
		on(CategoryMalformedBody, MalformedBody),
		on(CategoryFieldErrors, FieldErrors),
		on(CategoryMissingParameter, MissingParameter),
		on(CategoryMissingHeader, MissingHeader),
		on(CategoryBindingFailure, BindingFailure),
		on(CategoryTypeMismatch, TypeMismatch),
		on(CategoryMethodNotAllowed, MethodNotAllowed),
		on(CategoryUnsupportedMedia, UnsupportedMediaType),
		on(CategoryIOFailure, IOFailure),
		on(CategoryRoute, Route),
		{
			Category: CategoryUnhandled,
			Match:    func(error) bool { return true },
			Classify: Unhandled,
		},
	}
}

// Dispatcher routes a failure to the first matching rule.
// It is immutable after construction and safe for concurrent use.
type Dispatcher struct {
	rules []Rule
}

// NewDispatcher returns a dispatcher over the default rules.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{rules: DefaultRules()}
}

// Categories returns the categories in precedence order.
func (d *Dispatcher) Categories() []Category {
	out := make([]Category, len(d.rules))
	for i, r := range d.rules {
		out[i] = r.Category
	}
	return out
}

// Match returns the category that would handle err.
func (d *Dispatcher) Match(err error) Category {
	for _, r := range d.rules {
		if r.Match(err) {
			return r.Category
		}
	}
	return CategoryUnhandled
}

// Classify resolves err with the first rule whose category matches.
func (d *Dispatcher) Classify(err error) Resolution {
	for _, r := range d.rules {
		if r.Match(err) {
			return r.Classify(err)
		}
	}
	return Unhandled(err)
}
