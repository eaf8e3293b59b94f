// Package apperror holds the error vocabulary of the service: the taxonomy of
// error codes, the processing-error envelope returned to clients and the
// failure categories that the classifier package turns into responses.
package apperror

import (
	"net/http"
)

// ErrorCode is one entry of the taxonomy.
// The first three digits of Code are the HTTP status it is returned with.
type ErrorCode struct {
	Code  string
	Name  string
	Title string
}

var (
	ParameterMissingValue       = ErrorCode{Code: "40001", Name: "PARAMETER_MISSING_VALUE", Title: "Value missing in field"}
	ParameterInvalidLength      = ErrorCode{Code: "40002", Name: "PARAMETER_INVALID_LENGTH", Title: "Invalid value length in field"}
	ParameterIncorrectFormat    = ErrorCode{Code: "40003", Name: "PARAMETER_INCORRECT_FORMAT", Title: "Incorrect format in field"}
	ParameterValueNotInList     = ErrorCode{Code: "40004", Name: "PARAMETER_VALUE_NOT_IN_LIST", Title: "Value of field not in list"}
	ParameterOutOfRange         = ErrorCode{Code: "40005", Name: "PARAMETER_OUT_OF_RANGE", Title: "Value of field is out of range"}
	ConditionalValuesIncorrect  = ErrorCode{Code: "40010", Name: "CONDITIONAL_VALUES_INCORRECT", Title: "Conditional values not provided as expected"}
	ParameterUnspecifiedProblem = ErrorCode{Code: "40099", Name: "PARAMETER_UNSPECIFIED_PROBLEM", Title: "Invalid input value"}
	Unauthorized                = ErrorCode{Code: "40100", Name: "UNAUTHORIZED", Title: "Authorization has been refused"}
	Forbidden                   = ErrorCode{Code: "40300", Name: "FORBIDDEN", Title: "Insufficient authentication credentials to grant access"}
	DataNotFound                = ErrorCode{Code: "40400", Name: "DATA_NOT_FOUND", Title: "Requested data could not be found"}
	MethodNotAllowed            = ErrorCode{Code: "40500", Name: "METHOD_NOT_ALLOWED", Title: "Method Not Allowed"}
	Conflict                    = ErrorCode{Code: "40900", Name: "CONFLICT", Title: "Conflict with the current state of the target resource"}
	NotAcceptable               = ErrorCode{Code: "40600", Name: "NOT_ACCEPTABLE", Title: "Not Acceptable - resource does not have a current representation that would be acceptable to the user agent"}
	UnsupportedMediaType        = ErrorCode{Code: "41500", Name: "UNSUPPORTED_MEDIA_TYPE", Title: "Content type not supported"}
	InternalError               = ErrorCode{Code: "50000", Name: "INTERNAL_ERROR", Title: "An unexpected error occurred"}
	UndefinedInternalError      = ErrorCode{Code: "50099", Name: "UNDEFINED_INTERNAL_ERROR", Title: "Undefined error"}
	NotImplemented              = ErrorCode{Code: "50100", Name: "NOT_IMPLEMENTED", Title: "Operation for this request has not been implemented yet"}
)

// Registry lists every taxonomy entry.
var Registry = []ErrorCode{
	ParameterMissingValue,
	ParameterInvalidLength,
	ParameterIncorrectFormat,
	ParameterValueNotInList,
	ParameterOutOfRange,
	ConditionalValuesIncorrect,
	ParameterUnspecifiedProblem,
	Unauthorized,
	Forbidden,
	DataNotFound,
	MethodNotAllowed,
	Conflict,
	NotAcceptable,
	UnsupportedMediaType,
	InternalError,
	UndefinedInternalError,
	NotImplemented,
}

// Lookup finds a taxonomy entry by its numeric code.
func Lookup(code string) (ErrorCode, bool) {
	for _, c := range Registry {
		if c.Code == code {
			return c, true
		}
	}
	return ErrorCode{}, false
}

// String returns "<code> <name>".
func (c ErrorCode) String() string {
	return c.Code + " " + c.Name
}

// FromStatus resolves the code used by the default route from an HTTP status.
// Only 404 and 400 are mapped; every other status, 401 included, is an internal error.
func FromStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return DataNotFound
	case http.StatusBadRequest:
		return ParameterUnspecifiedProblem
	default:
		return InternalError
	}
}
