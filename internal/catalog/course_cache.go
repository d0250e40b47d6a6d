package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CourseDataSource defines the interface for catalog loading. The production
// source is the static in-code catalog; tests substitute their own.
type CourseDataSource interface {
	LoadCourses(ctx context.Context) ([]*models.Course, error)
}

const (
	courseKeyPrefix = "course:slug:"
	allCoursesKey   = "course:all"
)

// CourseCache holds the catalog in memory, indexed by slug. The catalog is
// static, so entries never expire; Initialize populates it once at startup.
type CourseCache struct {
	cache      *gocache.Cache
	dataSource CourseDataSource

	mu    sync.RWMutex
	ready bool
}

// NewCourseCache creates a course cache over the given data source
func NewCourseCache(dataSource CourseDataSource) *CourseCache {
	return &CourseCache{
		cache:      gocache.New(gocache.NoExpiration, 0),
		dataSource: dataSource,
	}
}

// Initialize populates the cache synchronously. Call during startup before
// accepting requests; the healthcheck reports unavailable until it succeeds.
func (cc *CourseCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing course catalog...")

	courses, err := cc.dataSource.LoadCourses(ctx)
	if err != nil {
		logger.Error("Failed to load course catalog", zap.Error(err))
		return fmt.Errorf("load course catalog: %w", err)
	}

	for _, course := range courses {
		cc.cache.Set(courseKeyPrefix+course.Slug, course, gocache.NoExpiration)
	}
	cc.cache.Set(allCoursesKey, courses, gocache.NoExpiration)
	metrics.CacheSize.WithLabelValues("courses").Set(float64(len(courses)))

	cc.mu.Lock()
	cc.ready = true
	cc.mu.Unlock()

	logger.Info("Course catalog initialized", zap.Int("courses", len(courses)))
	return nil
}

// IsReady returns true once the catalog has been loaded
func (cc *CourseCache) IsReady() bool {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.ready
}

// GetAll returns every course in catalog order
func (cc *CourseCache) GetAll() ([]*models.Course, error) {
	if !cc.IsReady() {
		return nil, fmt.Errorf("catalog not initialized")
	}

	data, found := cc.cache.Get(allCoursesKey)
	if !found {
		metrics.CacheMisses.WithLabelValues("courses_all").Inc()
		return nil, fmt.Errorf("catalog not populated")
	}

	metrics.CacheHits.WithLabelValues("courses_all").Inc()

	courses, ok := data.([]*models.Course)
	if !ok {
		logger.Error("Invalid catalog cache data type")
		return nil, fmt.Errorf("invalid catalog data")
	}

	return courses, nil
}

// GetBySlug retrieves a single course by slug with O(1) complexity
func (cc *CourseCache) GetBySlug(slug string) (*models.Course, bool) {
	if !cc.IsReady() {
		return nil, false
	}

	data, found := cc.cache.Get(courseKeyPrefix + slug)
	if !found {
		metrics.CacheMisses.WithLabelValues("course_by_slug").Inc()
		logger.Debug("Course not found in catalog", zap.String("slug", slug))
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("course_by_slug").Inc()

	course, ok := data.(*models.Course)
	if !ok {
		logger.Error("Invalid catalog cache data type", zap.String("slug", slug))
		cc.cache.Delete(courseKeyPrefix + slug)
		return nil, false
	}

	return course, true
}
