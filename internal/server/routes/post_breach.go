package routes

import (
	"net/http"

	"github.com/kineticKshitij/MajorProject-V1-sub000/internal/server/middleware"
	"github.com/kineticKshitij/MajorProject-V1-sub000/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func CheckBreachHandler(c echo.Context) error {
	type checkBreachBody struct {
		Email string `json:"email" validate:"required,email"`
	}

	data := new(checkBreachBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A valid email address is required"})
	}

	client := c.(*middleware.AppContext).App.Breach
	result, err := client.CheckEmail(c.Request().Context(), data.Email)
	if err != nil {
		logger.Error("Breach check failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Breach lookup unavailable"})
	}

	return c.JSON(http.StatusOK, result)
}

// CheckPasswordHandler checks a password against the k-anonymity range API.
// Only the first five characters of the SHA-1 hash ever leave the process.
func CheckPasswordHandler(c echo.Context) error {
	type checkPasswordBody struct {
		Password string `json:"password" validate:"required,min=1"`
	}

	data := new(checkPasswordBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A password is required"})
	}

	client := c.(*middleware.AppContext).App.Breach
	result, err := client.CheckPassword(c.Request().Context(), data.Password)
	if err != nil {
		logger.Error("Password check failed", "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Password lookup unavailable"})
	}

	return c.JSON(http.StatusOK, result)
}
