package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"papertrack/internal/keys"
	"papertrack/internal/model"
	"papertrack/internal/service"
)

// OrganismHandler bundles HTTP handlers for the organism resource.
type OrganismHandler struct {
	svc service.OrganismService
}

// NewOrganismHandler creates a handler layer.
func NewOrganismHandler(svc service.OrganismService) *OrganismHandler {
	return &OrganismHandler{svc: svc}
}

// CreateOrganismRequest is the POST /organisms body.
type CreateOrganismRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// OrganismResponse is the public projection of an organism. ID is the opaque
// URL-safe key.
type OrganismResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Country string `json:"country"`
}

func newOrganismResponse(organism *model.Organism) OrganismResponse {
	return OrganismResponse{
		ID:      keys.Encode(keys.KindOrganism, organism.ID),
		Name:    organism.Name,
		Address: organism.Address,
		Country: organism.Country,
	}
}

// CreateOrganism godoc
// @Summary Create an organism
// @Tags organisms
// @Accept json
// @Produce json
// @Param organism body CreateOrganismRequest true "Organism payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /organisms [post]
func (h *OrganismHandler) CreateOrganism(c echo.Context) error {
	var req CreateOrganismRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, key, err := h.svc.Create(c.Request().Context(), req.Name, req.Address, req.Country)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"created": key})
}

// GetOrganism godoc
// @Summary Get organism by opaque key
// @Tags organisms
// @Produce json
// @Param key path string true "Organism key"
// @Success 200 {object} OrganismResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /organisms/{key} [get]
func (h *OrganismHandler) GetOrganism(c echo.Context) error {
	organism, err := h.svc.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrganismResponse(organism))
}

// ListOrganisms godoc
// @Summary List organisms
// @Tags organisms
// @Produce json
// @Success 200 {array} OrganismResponse
// @Router /organisms [get]
func (h *OrganismHandler) ListOrganisms(c echo.Context) error {
	organisms, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	res := make([]OrganismResponse, 0, len(organisms))
	for i := range organisms {
		res = append(res, newOrganismResponse(&organisms[i]))
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteOrganism godoc
// @Summary Delete organism by opaque key
// @Tags organisms
// @Produce json
// @Param key path string true "Organism key"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BasicAuth
// @Router /organisms/{key} [delete]
func (h *OrganismHandler) DeleteOrganism(c echo.Context) error {
	key := c.Param("key")
	if err := h.svc.Delete(c.Request().Context(), key); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": key})
}
