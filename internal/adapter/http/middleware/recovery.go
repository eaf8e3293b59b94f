package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flightsearch-app/internal/apperror"
)

// RecoveryConfig configures Recover.
type RecoveryConfig struct {
	// DisableStack skips capturing the stack at recovery time.
	DisableStack bool
}

// DefaultRecoveryConfig captures the stack.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover turns a panic in the handler chain into an *apperror.PanicError
// returned to the error handler, which answers with the catch-all envelope.
func Recover() echo.MiddlewareFunc {
	return RecoverWithConfig(DefaultRecoveryConfig())
}

// RecoverWithConfig is Recover with a custom configuration.
func RecoverWithConfig(config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				pe := &apperror.PanicError{Value: r}
				if !config.DisableStack {
					pe.Trace = debug.Stack()
				}
				err = pe
			}()
			return next(c)
		}
	}
}
