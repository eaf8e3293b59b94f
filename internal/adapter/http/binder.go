package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// SupportedMediaTypes lists the request body types the API reads.
var SupportedMediaTypes = []string{echo.MIMEApplicationJSON}

// supportedMediaType reports whether the Content-Type names one of
// SupportedMediaTypes, ignoring case and parameters such as charset.
func supportedMediaType(ctype string) bool {
	mediaType, _, err := mime.ParseMediaType(ctype)
	if err != nil {
		return false
	}
	for _, supported := range SupportedMediaTypes {
		if strings.EqualFold(mediaType, supported) {
			return true
		}
	}
	return false
}

// pathBinding is implemented by request types read from path parameters.
type pathBinding interface {
	bindPath(b *echo.ValueBinder)
}

// queryBinding is implemented by request types read from the query string.
// Required parameters are reported missing when absent from the query.
type queryBinding interface {
	requiredQuery() []string
	bindQuery(b *echo.ValueBinder)
}

// RequestBinder implements echo.Binder. Path and query parameters are bound
// through echo's ValueBinder; bodies are decoded as JSON. Every failure is
// returned as an apperror failure category.
type RequestBinder struct{}

// Bind binds path and query parameters when i declares them, and the JSON
// body otherwise.
func (b *RequestBinder) Bind(i interface{}, c echo.Context) error {
	params := false
	if p, ok := i.(pathBinding); ok {
		params = true
		vb := echo.PathParamsBinder(c)
		p.bindPath(vb)
		if err := vb.BindError(); err != nil {
			return bindingFailure(err)
		}
	}
	if q, ok := i.(queryBinding); ok {
		params = true
		query := c.QueryParams()
		for _, name := range q.requiredQuery() {
			if _, ok := query[name]; !ok {
				return &apperror.MissingParameterError{Name: name}
			}
		}
		vb := echo.QueryParamsBinder(c)
		q.bindQuery(vb)
		if err := vb.BindError(); err != nil {
			return bindingFailure(err)
		}
	}
	if params {
		return nil
	}
	return b.BindBody(c, i)
}

// BindBody decodes the JSON request body into i.
func (b *RequestBinder) BindBody(c echo.Context, i interface{}) error {
	req := c.Request()
	ctype := req.Header.Get(echo.HeaderContentType)
	if !supportedMediaType(ctype) {
		return &apperror.UnsupportedMediaTypeError{ContentType: ctype, Supported: SupportedMediaTypes}
	}

	if req.Body == nil || req.Body == http.NoBody {
		return &apperror.MalformedBodyError{Cause: io.EOF}
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return &apperror.MalformedBodyError{Cause: err}
	}

	if err := json.NewDecoder(bytes.NewReader(data)).Decode(i); err != nil {
		return decodeFailure(data, err)
	}
	return nil
}

func bindingFailure(err error) error {
	var be *echo.BindingError
	if !errors.As(err, &be) {
		return &apperror.BindingFailureError{Message: err.Error()}
	}
	value := ""
	if len(be.Values) > 0 {
		value = be.Values[0]
	}
	return &apperror.TypeMismatchError{Parameter: be.Field, Value: value, Err: err}
}

func decodeFailure(data []byte, err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return &apperror.MalformedBodyError{Cause: &apperror.ParseError{Field: fieldAtFailure(data, syntaxErr.Offset), Err: err}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return &apperror.MalformedBodyError{Cause: &apperror.ParseError{Field: fieldAtFailure(data, int64(len(data))), Err: err}}
	case errors.As(err, &typeErr):
		return &apperror.MalformedBodyError{Cause: &apperror.MappingError{Path: mappingPath(typeErr.Field), Err: err}}
	default:
		return &apperror.MalformedBodyError{Cause: err}
	}
}

// mappingPath turns the dotted field of a type error into a path ordered
// from the innermost reference outwards.
func mappingPath(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// fieldAtFailure returns the last object key read before offset, or "" when
// the failure happened outside any named field.
func fieldAtFailure(data []byte, offset int64) string {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}

	type frame struct {
		object    bool
		expectKey bool
	}
	var (
		stack []frame
		field string
	)
	valueDone := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].expectKey = true
		}
	}

	dec := json.NewDecoder(bytes.NewReader(data[:offset]))
	for {
		tok, err := dec.Token()
		if err != nil {
			return field
		}
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				if n := len(stack); n > 0 && stack[n-1].object {
					stack[n-1].expectKey = false
				}
				stack = append(stack, frame{object: true, expectKey: true})
			case '[':
				if n := len(stack); n > 0 && stack[n-1].object {
					stack[n-1].expectKey = false
				}
				stack = append(stack, frame{})
			default:
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectKey {
				field = t
				stack[n-1].expectKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}
