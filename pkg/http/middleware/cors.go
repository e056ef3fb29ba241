package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORS opens the read-only API to browser clients on any origin. Only the
// given safe methods are advertised; preflight requests are answered inline.
func CORS(allowMethods []string) echo.MiddlewareFunc {
	methods := strings.Join(allowMethods, ", ")
	headers := strings.Join([]string{
		echo.HeaderOrigin,
		echo.HeaderContentType,
		echo.HeaderAccept,
	}, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
