package services

import (
	"github.com/tradespark/tradespark-api/internal/catalog"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/pkg/errors"
	"github.com/tradespark/tradespark-api/pkg/metrics"
)

// CourseService exposes the read-only course catalog
type CourseService struct {
	catalog *catalog.CourseCache
}

// NewCourseService creates a new course service over the catalog cache
func NewCourseService(cache *catalog.CourseCache) *CourseService {
	return &CourseService{catalog: cache}
}

// ListCourses returns the full catalog
func (s *CourseService) ListCourses() (*models.CourseListResponse, error) {
	courses, err := s.catalog.GetAll()
	if err != nil {
		return nil, errors.InternalError("course catalog unavailable")
	}

	return &models.CourseListResponse{
		Courses: courses,
		Total:   len(courses),
	}, nil
}

// GetCourseBySlug looks up one course by its URL slug
func (s *CourseService) GetCourseBySlug(slug string) (*models.Course, error) {
	course, found := s.catalog.GetBySlug(slug)
	if !found {
		return nil, errors.NotFoundError("course")
	}

	metrics.CourseDetailViews.WithLabelValues(slug).Inc()
	return course, nil
}
