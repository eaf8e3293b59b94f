package apperror

import (
	"strings"

	"github.com/flight-search/flightsearch-app/internal/infrastructure/logger"
)

// ConstraintKind is a validation constraint the taxonomy knows how to map.
type ConstraintKind int

const (
	ConstraintUnknown ConstraintKind = iota
	ConstraintSize
	ConstraintMin
	ConstraintMax
	ConstraintNotNull
	ConstraintNotEmpty
	ConstraintNotBlank
	ConstraintDigitsOnly
	ConstraintPositiveOrZero
	ConstraintPositive
	ConstraintNegativeOrZero
	ConstraintNegative
	ConstraintPattern
	ConstraintConditionalValues
)

type constraintEntry struct {
	name string
	code ErrorCode
}

// constraintTable maps each kind to its matched name and the code it resolves to.
// Names are compared after uppercasing only.
var constraintTable = map[ConstraintKind]constraintEntry{
	ConstraintSize:              {"SIZE", ParameterInvalidLength},
	ConstraintMin:               {"MIN", ParameterOutOfRange},
	ConstraintMax:               {"MAX", ParameterOutOfRange},
	ConstraintNotNull:           {"NOTNULL", ParameterMissingValue},
	ConstraintNotEmpty:          {"NOTEMPTY", ParameterMissingValue},
	ConstraintNotBlank:          {"NOTBLANK", ParameterMissingValue},
	ConstraintDigitsOnly:        {"DIGITS", ParameterIncorrectFormat},
	ConstraintPositiveOrZero:    {"POSITIVEORZERO", ParameterOutOfRange},
	ConstraintPositive:          {"POSITIVE", ParameterOutOfRange},
	ConstraintNegativeOrZero:    {"NEGATIVEORZERO", ParameterOutOfRange},
	ConstraintNegative:          {"NEGATIVE", ParameterOutOfRange},
	ConstraintPattern:           {"PATTERN", ParameterIncorrectFormat},
	ConstraintConditionalValues: {"CONDITIONALVALUES", ConditionalValuesIncorrect},
}

var constraintsByName = func() map[string]ConstraintKind {
	m := make(map[string]ConstraintKind, len(constraintTable))
	for kind, e := range constraintTable {
		m[e.name] = kind
	}
	return m
}()

// ParseConstraint finds the kind whose name equals the uppercased input.
// No other normalization happens: "SIZE " and "not_blank" are unknown.
func ParseConstraint(name string) ConstraintKind {
	if kind, ok := constraintsByName[strings.ToUpper(name)]; ok {
		return kind
	}
	logger.Info().Str("constraint", name).Msg("Not supported ConstraintViolation found")
	return ConstraintUnknown
}

// ErrorCode returns the taxonomy entry the kind maps to.
func (k ConstraintKind) ErrorCode() ErrorCode {
	if e, ok := constraintTable[k]; ok {
		return e.code
	}
	return ParameterUnspecifiedProblem
}

// FromConstraint resolves a constraint name to its taxonomy entry.
// Unknown names resolve to ParameterUnspecifiedProblem; it never fails.
func FromConstraint(name string) ErrorCode {
	return ParseConstraint(name).ErrorCode()
}

// Rule is the error-code configuration attached to one validation rule.
// Constraint is resolved through the taxonomy unless Code overrides it;
// Message, when set, replaces the field name as description.
type Rule struct {
	Constraint string
	Code       *ErrorCode
	Message    string
}

// ErrorCode returns the override code or the code of the constraint.
func (r Rule) ErrorCode() ErrorCode {
	if r.Code != nil {
		return *r.Code
	}
	return FromConstraint(r.Constraint)
}
