package handlers

import (
	"net/http"

	"webafan-portfolio/app/server/utils"

	"github.com/labstack/echo/v4"
)

type ErrorMessage struct {
	Message *string `json:"message,omitempty"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}
