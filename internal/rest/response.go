package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

// intQueryParam reads an integer query parameter, returning 0 (use service
// default) when absent or malformed.
func intQueryParam(c echo.Context, name string) int {
	val := c.QueryParam(name)
	if val == "" {
		return 0
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
