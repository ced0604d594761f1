package http

import (
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ReadJSON decodes a JSON request body into req. Requests that do not declare
// a JSON content type are rejected without reading the body.
func ReadJSON(c echo.Context, req interface{}) error {
	if !IsJSON(c.Request().Header.Get(echo.HeaderContentType)) {
		return echo.ErrUnsupportedMediaType
	}
	if c.Request().ContentLength == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty body")
	}
	return c.Echo().JSONSerializer.Deserialize(c, req)
}

// IsJSON accepts application/json and structured +json types.
func IsJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == echo.MIMEApplicationJSON || strings.HasSuffix(mt, "+json")
}
