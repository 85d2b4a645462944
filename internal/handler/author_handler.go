package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papertrack/internal/model"
	"papertrack/internal/service"
)

// AuthorHandler bundles HTTP handlers for the author resource.
type AuthorHandler struct {
	svc service.AuthorService
}

// NewAuthorHandler creates a handler layer.
func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

// CreateAuthorRequest is the POST /author body. Organism is the opaque key of
// an existing organism.
type CreateAuthorRequest struct {
	ID       string `json:"id" validate:"required,email_id"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
	Organism string `json:"organism" validate:"required"`
}

// AuthorResponse is the public projection of an author, with the organism
// inlined.
type AuthorResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	LastName string           `json:"lastName"`
	Organism OrganismResponse `json:"organism"`
}

func newAuthorResponse(author *model.Author) AuthorResponse {
	return AuthorResponse{
		ID:       author.ID,
		Name:     author.Name,
		LastName: author.LastName,
		Organism: newOrganismResponse(&author.Organism),
	}
}

// CreateAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body CreateAuthorRequest true "Author payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /author [post]
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.svc.Create(c.Request().Context(), req.ID, req.Name, req.LastName, req.Organism)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"created": author.ID})
}

// GetAuthor godoc
// @Summary Get author by id
// @Tags authors
// @Produce json
// @Param id path string true "Author email"
// @Success 200 {object} AuthorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /author/{id} [get]
func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	author, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newAuthorResponse(author))
}

// ListAuthors godoc
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} AuthorResponse
// @Router /author [get]
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	res := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		res = append(res, newAuthorResponse(&authors[i]))
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteAuthor godoc
// @Summary Delete author by id
// @Tags authors
// @Produce json
// @Param id path string true "Author email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /author/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": id})
}
