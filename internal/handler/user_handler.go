package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"papertrack/internal/auth"
	apperrors "papertrack/internal/errors"
	"papertrack/internal/model"
	"papertrack/internal/service"
)

// UserHandler bundles HTTP handlers for the user resource.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the POST /user body.
type CreateUserRequest struct {
	ID       string `json:"id" validate:"required,email_id"`
	Nick     string `json:"nick"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the PUT /user/{id} body. The identifier is immutable
// and the password is not updatable through this endpoint.
type UpdateUserRequest struct {
	Nick     string `json:"nick"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID       string `json:"id"`
	Nick     string `json:"nick"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

func newUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Nick:     user.Nick,
		Name:     user.Name,
		LastName: user.LastName,
	}
}

// CreateUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /user [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Create(c.Request().Context(), req.ID, req.Nick, req.Name, req.LastName, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"created": user.ID})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User email"
// @Success 200 {object} UserResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} UserResponse
// @Router /user [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, newUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, res)
}

// UpdateUser godoc
// @Summary Update own user record
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User email"
// @Param user body UpdateUserRequest true "User payload"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Update(c.Request().Context(), auth.Principal(c), id, req.Nick, req.Name, req.LastName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteUser godoc
// @Summary Delete own user record
// @Tags users
// @Produce json
// @Param id path string true "User email"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), auth.Principal(c), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": id})
}

// pathID percent-decodes a path parameter, so emails arrive in their stored
// form regardless of client-side escaping.
func pathID(c echo.Context, name string) (string, error) {
	id, err := url.QueryUnescape(c.Param(name))
	if err != nil {
		return "", apperrors.NewHTTPError(http.StatusBadRequest, "invalid identifier")
	}
	return id, nil
}
