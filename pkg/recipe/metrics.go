package recipe

import (
	"Food-Recipes-Backend/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store query metrics
	recipeQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_catalog_query_duration_seconds",
			Help:    "Duration of recipe store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	recipeQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_catalog_query_errors_total",
			Help: "Total number of failed recipe store queries",
		},
		[]string{"operation"},
	)

	// Filter usage
	recipeFilterRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_catalog_filter_requests_total",
			Help: "Total number of recipe filter requests by ingredient match mode",
		},
		[]string{"mode"},
	)
)

const (
	FilterModeNone = "none"
	FilterModeAny  = "any"
	FilterModeAll  = "all"
)

// FilterMode names the ingredient matching mode a request will use.
func FilterMode(req domain.RecipeFilterRequest) string {
	switch {
	case len(req.IngredientIDs) == 0:
		return FilterModeNone
	case req.MatchAllIngredients:
		return FilterModeAll
	default:
		return FilterModeAny
	}
}

func observeQuery(operation string, start time.Time, err error) {
	recipeQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		recipeQueryErrors.WithLabelValues(operation).Inc()
	}
}
