package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradespark/tradespark-api/internal/catalog"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

type fakeSource struct {
	courses []*models.Course
	err     error
}

func (f *fakeSource) LoadCourses(_ context.Context) ([]*models.Course, error) {
	return f.courses, f.err
}

func TestCourseCache_NotReadyBeforeInitialize(t *testing.T) {
	cache := catalog.NewCourseCache(&fakeSource{})

	assert.False(t, cache.IsReady())

	_, err := cache.GetAll()
	assert.Error(t, err)

	_, found := cache.GetBySlug("anything")
	assert.False(t, found)
}

func TestCourseCache_InitializeAndLookup(t *testing.T) {
	source := &fakeSource{courses: []*models.Course{
		{ID: 1, Slug: "swing-trading", Title: "Swing Trading"},
		{ID: 2, Slug: "price-action", Title: "Price Action"},
	}}
	cache := catalog.NewCourseCache(source)

	require.NoError(t, cache.Initialize(context.Background()))
	assert.True(t, cache.IsReady())

	all, err := cache.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	course, found := cache.GetBySlug("price-action")
	require.True(t, found)
	assert.Equal(t, "Price Action", course.Title)

	_, found = cache.GetBySlug("missing")
	assert.False(t, found)
}

func TestCourseCache_InitializeSourceFailure(t *testing.T) {
	cache := catalog.NewCourseCache(&fakeSource{err: errors.New("source down")})

	err := cache.Initialize(context.Background())
	require.Error(t, err)
	assert.False(t, cache.IsReady())
}

func TestStaticSource_SlugsAreURLSafe(t *testing.T) {
	courses, err := catalog.NewStaticSource().LoadCourses(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, courses)

	seen := make(map[string]bool)
	for _, course := range courses {
		assert.Regexp(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, course.Slug)
		assert.False(t, seen[course.Slug], "duplicate slug %s", course.Slug)
		seen[course.Slug] = true
	}
}
