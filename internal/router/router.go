package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"papertrack/internal/auth"
	apperrors "papertrack/internal/errors"
	"papertrack/internal/handler"
	"papertrack/internal/service"
)

// Register wires routes and middleware. Mutating endpoints sit behind the
// Basic-auth gate; user registration and all reads stay public.
func Register(
	e *echo.Echo,
	userService service.UserService,
	userHandler *handler.UserHandler,
	organismHandler *handler.OrganismHandler,
	authorHandler *handler.AuthorHandler,
	paperHandler *handler.PaperHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	gate := auth.Middleware(userService)

	// Users: registration and reads are public, mutation is owner-gated.
	e.POST("/user", userHandler.CreateUser)
	e.GET("/user", userHandler.ListUsers)
	e.GET("/user/:id", userHandler.GetUser)
	e.PUT("/user/:id", userHandler.UpdateUser, gate)
	e.DELETE("/user/:id", userHandler.DeleteUser, gate)

	// Organisms
	e.POST("/organisms", organismHandler.CreateOrganism, gate)
	e.GET("/organisms", organismHandler.ListOrganisms)
	e.GET("/organisms/:key", organismHandler.GetOrganism)
	e.DELETE("/organisms/:key", organismHandler.DeleteOrganism, gate)

	// Authors
	e.POST("/author", authorHandler.CreateAuthor, gate)
	e.GET("/author", authorHandler.ListAuthors)
	e.GET("/author/:id", authorHandler.GetAuthor)
	e.DELETE("/author/:id", authorHandler.DeleteAuthor, gate)

	// Papers
	e.POST("/papers", paperHandler.CreatePaper, gate)
	e.GET("/papers", paperHandler.ListPapers)
	e.GET("/papers/:key", paperHandler.GetPaper)
	e.DELETE("/papers/:key", paperHandler.DeletePaper, gate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the email-identifier rule
// registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("email_id", func(fl validator.FieldLevel) bool {
		return service.ValidEmail(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// errorHandler renders every failure as a flat {"error": message} body with
// the mapped status code.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		return
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		_ = c.JSON(echoErr.Code, apperrors.ErrorResponse{Error: fmt.Sprintf("%v", echoErr.Message)})
		return
	}

	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	_ = c.JSON(mapped.StatusCode, mapped.ToErrorResponse())
}
