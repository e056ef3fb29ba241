package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes the payload as-is with status 200. The stock report
// is a flat record, so no envelope is added on the happy path.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// NoContentResponse writes an empty 200 (used by HEAD short-circuit).
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// ErrResponse writes an error envelope with the given status.
func ErrResponse(c echo.Context, status int, errs interface{}) error {
	return c.JSON(status, ErrorResponse{
		Status:  status,
		Message: http.StatusText(status),
		Errors:  errs,
	})
}

// BadRequestResponse writes bad request error.
func BadRequestResponse(c echo.Context, errs interface{}) error {
	return ErrResponse(c, http.StatusBadRequest, errs)
}

// InternalServerErrorResponse writes internal server error.
func InternalServerErrorResponse(c echo.Context, err error) error {
	msg := "Something went wrong"
	if err != nil {
		msg = err.Error()
	}
	return ErrResponse(c, http.StatusInternalServerError, msg)
}

// AppErrorResponse writes application error response, mapping AppError
// status; anything else becomes a generic 500 carrying the error text.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrResponse(c, appErr.Status, []*AppError{appErr})
	}
	return InternalServerErrorResponse(c, err)
}
