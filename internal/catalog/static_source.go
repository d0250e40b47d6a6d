package catalog

import (
	"context"

	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/pkg/slug"
)

// StaticSource serves the hard-coded course catalog. The marketing site has
// no course admin: catalog changes ship as code changes.
type StaticSource struct{}

// NewStaticSource creates the built-in catalog source
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// LoadCourses returns the full catalog with slugs derived from titles
func (s *StaticSource) LoadCourses(_ context.Context) ([]*models.Course, error) {
	courses := []*models.Course{
		{
			ID:            1,
			Title:         "Stock Market Foundations",
			Tagline:       "From demat account to your first disciplined trade",
			Description:   "A ground-up introduction to equity markets: order types, market microstructure, reading candlestick charts, and building a trading routine that survives contact with a live market.",
			PriceINR:      14999,
			DurationWeeks: 6,
			Level:         "beginner",
			Instructor:    "Rohit Malhotra",
			Featured:      true,
			Modules: []models.CourseModule{
				{Title: "How Markets Work", Lessons: 8},
				{Title: "Charting Essentials", Lessons: 10},
				{Title: "Risk and Position Sizing", Lessons: 6},
				{Title: "Your First Trading Plan", Lessons: 5},
			},
		},
		{
			ID:            2,
			Title:         "Advanced Technical Analysis",
			Tagline:       "Price action, market structure, and multi-timeframe setups",
			Description:   "For traders who know the basics: supply-demand zones, volume profile, divergence trading, and building and backtesting rule-based setups.",
			PriceINR:      24999,
			DurationWeeks: 8,
			Level:         "intermediate",
			Instructor:    "Priya Nair",
			Featured:      true,
			Modules: []models.CourseModule{
				{Title: "Market Structure Deep Dive", Lessons: 12},
				{Title: "Volume and Order Flow", Lessons: 9},
				{Title: "Setup Design and Backtesting", Lessons: 11},
			},
		},
		{
			ID:            3,
			Title:         "Options and Derivatives Masterclass",
			Tagline:       "Income strategies and defined-risk spreads",
			Description:   "Options pricing intuition without the heavy math, followed by the strategies that matter: covered calls, credit spreads, iron condors, and adjustment playbooks.",
			PriceINR:      34999,
			DurationWeeks: 10,
			Level:         "advanced",
			Instructor:    "Rohit Malhotra",
			Modules: []models.CourseModule{
				{Title: "Options Pricing Intuition", Lessons: 7},
				{Title: "Income Strategies", Lessons: 10},
				{Title: "Spreads and Adjustments", Lessons: 12},
				{Title: "Portfolio Greeks", Lessons: 6},
			},
		},
		{
			ID:            4,
			Title:         "Intraday Momentum Trading",
			Tagline:       "A complete playbook for the opening ninety minutes",
			Description:   "Scanning, gap classification, VWAP strategies, and the discipline framework to stop overtrading. Includes four weeks of live market sessions.",
			PriceINR:      19999,
			DurationWeeks: 6,
			Level:         "intermediate",
			Instructor:    "Aman Verma",
			Modules: []models.CourseModule{
				{Title: "Pre-Market Preparation", Lessons: 6},
				{Title: "Momentum Setups", Lessons: 10},
				{Title: "Live Session Reviews", Lessons: 8},
			},
		},
	}

	for _, c := range courses {
		c.Slug = slug.Make(c.Title)
	}

	return courses, nil
}
