package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the id
//  2. RequestLogger, which also sees the status written by Recover
//  3. Recover, closest to the handlers
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, recovery RecoveryConfig) {
	e.Use(RequestID(log))
	e.Use(RequestLogger(log))
	e.Use(Recover(log, recovery))
}
