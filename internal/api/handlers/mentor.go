package handlers

import (
	"net/http"

	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MentorHandler handles HTTP requests for the mentor directory
type MentorHandler struct {
	mentorService service.MentorServiceInterface
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(mentorService service.MentorServiceInterface) *MentorHandler {
	return &MentorHandler{
		mentorService: mentorService,
	}
}

// GetMentor handles GET /mentors/:id
// @Summary Get mentor by ID
// @Description Get a specific mentor by their UUID
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path string true "Mentor ID (UUID)"
// @Success 200 {object} service.MentorResponse "Successfully retrieved mentor"
// @Failure 400 {object} ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} ErrorResponse "Mentor not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /mentors/{id} [get]
func (h *MentorHandler) GetMentor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mentor ID"})
		return
	}

	mentor, err := h.mentorService.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// ListMentors handles GET /mentors
// @Summary List all mentors
// @Description Get all mentors with pagination
// @Tags mentors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MentorListResponse "Successfully retrieved mentors"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /mentors [get]
func (h *MentorHandler) ListMentors(c *gin.Context) {
	page, pageSize := pagination(c)

	mentors, err := h.mentorService.List(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mentors)
}
