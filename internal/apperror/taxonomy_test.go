package apperror

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CodesAreUnique(t *testing.T) {
	seen := make(map[string]string, len(Registry))
	for _, c := range Registry {
		prev, dup := seen[c.Code]
		assert.False(t, dup, "code %s used by %s and %s", c.Code, prev, c.Name)
		seen[c.Code] = c.Name
	}
	assert.Len(t, seen, 17)
}

func TestRegistry_CodesFollowStatusFamily(t *testing.T) {
	pattern := regexp.MustCompile(`^[45]\d{4}$`)
	for _, c := range Registry {
		require.Regexp(t, pattern, c.Code, c.Name)
		status, err := strconv.Atoi(c.Code[:3])
		require.NoError(t, err)
		assert.NotEmpty(t, http.StatusText(status), c.Name)
		assert.NotEmpty(t, c.Title, c.Name)
	}
}

func TestLookup(t *testing.T) {
	code, ok := Lookup("40400")
	require.True(t, ok)
	assert.Equal(t, DataNotFound, code)

	_, ok = Lookup("99999")
	assert.False(t, ok)
}

func TestFromConstraint(t *testing.T) {
	tests := []struct {
		name     string
		expected ErrorCode
	}{
		{"size", ParameterInvalidLength},
		{"sIzE", ParameterInvalidLength},
		{"SIZE ", ParameterUnspecifiedProblem},
		{"notblank", ParameterMissingValue},
		{"notnull", ParameterMissingValue},
		{"NotEmpty", ParameterMissingValue},
		{"not_blank", ParameterUnspecifiedProblem},
		{"not_null", ParameterUnspecifiedProblem},
		{"not_empty", ParameterUnspecifiedProblem},
		{"digits", ParameterIncorrectFormat},
		{"DIGITS", ParameterIncorrectFormat},
		{"pattern", ParameterIncorrectFormat},
		{"POSITIVE_OR_ZERO", ParameterUnspecifiedProblem},
		{"positive_or_zero", ParameterUnspecifiedProblem},
		{"positiveorzero", ParameterOutOfRange},
		{"POSITIVEORZERO", ParameterOutOfRange},
		{"Negative", ParameterOutOfRange},
		{"Positive", ParameterOutOfRange},
		{"NegativeOrZero", ParameterOutOfRange},
		{"min", ParameterOutOfRange},
		{"MAX", ParameterOutOfRange},
		{"conditionalValues", ConditionalValuesIncorrect},
		{"DURATIONMAX", ParameterUnspecifiedProblem},
		{"durationmax", ParameterUnspecifiedProblem},
		{"SomeUnhandledError", ParameterUnspecifiedProblem},
		{"", ParameterUnspecifiedProblem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromConstraint(tt.name))
		})
	}
}

func TestConstraintKind_NameRoundTrip(t *testing.T) {
	for kind, entry := range constraintTable {
		assert.Equal(t, kind, ParseConstraint(entry.name))
		assert.Equal(t, kind, ParseConstraint(strings.ToLower(entry.name)))
	}
	_, known := constraintTable[ConstraintUnknown]
	assert.False(t, known)
	assert.Equal(t, ParameterUnspecifiedProblem, ConstraintUnknown.ErrorCode())
}

func TestRule_ErrorCode(t *testing.T) {
	override := ConditionalValuesIncorrect

	assert.Equal(t, ParameterInvalidLength, Rule{Constraint: "size"}.ErrorCode())
	assert.Equal(t, ConditionalValuesIncorrect, Rule{Constraint: "size", Code: &override}.ErrorCode())
	assert.Equal(t, ParameterUnspecifiedProblem, Rule{}.ErrorCode())
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected ErrorCode
	}{
		{http.StatusNotFound, DataNotFound},
		{http.StatusBadRequest, ParameterUnspecifiedProblem},
		{http.StatusUnauthorized, InternalError},
		{http.StatusOK, InternalError},
		{http.StatusInternalServerError, InternalError},
		{0, InternalError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, FromStatus(tt.status))
		})
	}
}
