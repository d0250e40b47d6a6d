package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradespark/tradespark-api/internal/services"
	"github.com/tradespark/tradespark-api/pkg/errors"
)

type CourseHandler struct {
	service *services.CourseService
}

func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	resp, err := h.service.ListCourses()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to load courses", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCourseBySlug handles GET /api/v1/courses/:slug
func (h *CourseHandler) GetCourseBySlug(c *gin.Context) {
	slug := c.Param("slug")

	course, err := h.service.GetCourseBySlug(slug)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to load course", err)
		return
	}

	c.JSON(http.StatusOK, course)
}
