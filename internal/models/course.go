package models

// Course represents one entry in the static course catalog.
// The catalog is read-only: records are defined in code and looked up by slug.
type Course struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Tagline       string         `json:"tagline"`
	Description   string         `json:"description"`
	PriceINR      int            `json:"price_inr"`
	DurationWeeks int            `json:"duration_weeks"`
	Level         string         `json:"level"` // beginner, intermediate, advanced
	Instructor    string         `json:"instructor"`
	Featured      bool           `json:"featured"`
	Modules       []CourseModule `json:"modules"`
}

// CourseModule is one unit of a course curriculum
type CourseModule struct {
	Title   string `json:"title"`
	Lessons int    `json:"lessons"`
}

// CourseListResponse wraps the catalog listing
type CourseListResponse struct {
	Courses []*Course `json:"courses"`
	Total   int       `json:"total"`
}
