package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSONResponse writes data as JSON with the given status.
func JSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// SuccessResponse writes a 200 JSON response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return JSONResponse(c, http.StatusOK, data)
}
