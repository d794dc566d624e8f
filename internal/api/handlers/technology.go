package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TechnologyHandler handles HTTP requests for the technology catalog
type TechnologyHandler struct {
	technologyService service.TechnologyServiceInterface
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(technologyService service.TechnologyServiceInterface) *TechnologyHandler {
	return &TechnologyHandler{
		technologyService: technologyService,
	}
}

// GetTechnology handles GET /technologies/:id
// @Summary Get technology by ID
// @Description Get a specific technology by its UUID
// @Tags technologies
// @Accept json
// @Produce json
// @Param id path string true "Technology ID (UUID)"
// @Success 200 {object} service.TechnologyResponse "Successfully retrieved technology"
// @Failure 400 {object} ErrorResponse "Invalid technology ID"
// @Failure 404 {object} ErrorResponse "Technology not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /technologies/{id} [get]
func (h *TechnologyHandler) GetTechnology(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technology ID"})
		return
	}

	technology, err := h.technologyService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, technology)
}

// ListTechnologies handles GET /technologies
// @Summary List all technologies
// @Description Get the full technology catalog
// @Tags technologies
// @Accept json
// @Produce json
// @Success 200 {array} service.TechnologyResponse "Successfully retrieved technologies"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /technologies [get]
func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	technologies, err := h.technologyService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, technologies)
}
