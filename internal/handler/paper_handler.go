package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papertrack/internal/auth"
	"papertrack/internal/keys"
	"papertrack/internal/model"
	"papertrack/internal/service"
)

// updatedLayout renders the paper timestamp the way clients expect it.
const updatedLayout = "2006-01-02 15:04:05"

// PaperHandler bundles HTTP handlers for the paper resource.
type PaperHandler struct {
	svc service.PaperService
}

// NewPaperHandler creates a handler layer.
func NewPaperHandler(svc service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

// CreatePaperRequest is the POST /papers body. Author is the email of an
// existing author.
type CreatePaperRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// PaperResponse is the public projection of a paper. ID is the opaque
// URL-safe key; Author is the author's email.
type PaperResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Updated string `json:"updated"`
}

func newPaperResponse(paper *model.Paper) PaperResponse {
	return PaperResponse{
		ID:      keys.Encode(keys.KindPaper, paper.ID),
		Title:   paper.Title,
		Author:  paper.AuthorID,
		Updated: paper.UpdatedAt.Format(updatedLayout),
	}
}

// CreatePaper godoc
// @Summary Create a paper
// @Tags papers
// @Accept json
// @Produce json
// @Param paper body CreatePaperRequest true "Paper payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /papers [post]
func (h *PaperHandler) CreatePaper(c echo.Context) error {
	var req CreatePaperRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, key, err := h.svc.Create(c.Request().Context(), req.Title, req.Author)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"created": key})
}

// GetPaper godoc
// @Summary Get paper by opaque key
// @Tags papers
// @Produce json
// @Param key path string true "Paper key"
// @Success 200 {object} PaperResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /papers/{key} [get]
func (h *PaperHandler) GetPaper(c echo.Context) error {
	paper, err := h.svc.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPaperResponse(paper))
}

// ListPapers godoc
// @Summary List papers
// @Tags papers
// @Produce json
// @Success 200 {array} PaperResponse
// @Router /papers [get]
func (h *PaperHandler) ListPapers(c echo.Context) error {
	papers, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	res := make([]PaperResponse, 0, len(papers))
	for i := range papers {
		res = append(res, newPaperResponse(&papers[i]))
	}
	return c.JSON(http.StatusOK, res)
}

// DeletePaper godoc
// @Summary Delete paper by opaque key
// @Tags papers
// @Produce json
// @Param key path string true "Paper key"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /papers/{key} [delete]
func (h *PaperHandler) DeletePaper(c echo.Context) error {
	key := c.Param("key")
	if err := h.svc.Delete(c.Request().Context(), auth.Principal(c), key); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": key})
}
