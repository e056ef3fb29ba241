package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per request. Scrapes of /metrics are skipped
// so frequent polling does not drown out real traffic.
func RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			if req.URL.Path == "/metrics" {
				return err
			}
			res := c.Response()
			log.Printf("%s %s - %d (%dB, %s)",
				req.Method,
				req.URL.Path,
				res.Status,
				res.Size,
				time.Since(start),
			)

			return err
		}
	}
}
