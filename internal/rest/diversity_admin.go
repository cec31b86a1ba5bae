package rest

import (
	"context"
	"net/http"
	"time"

	"myDiverseMarket/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DiversityConfigStore interface {
		GetConfig(ctx context.Context, pageContext string) (domain.DiversityConfig, bool, error)
		UpsertConfig(ctx context.Context, cfg domain.DiversityConfig) error
	}

	RecommendationAnalyticsReader interface {
		DailyEvents(ctx context.Context, day time.Time) ([]domain.RecommendationEvent, error)
	}

	DiversityAdminHandler struct {
		validate  *validator.Validate
		cfgRepo   DiversityConfigStore
		analytics RecommendationAnalyticsReader
	}

	upsertDiversityConfigRequest struct {
		Context              string  `json:"context" validate:"required,oneof=homepage product_page store_page category_page"`
		MaxPerCategory       int     `json:"max_per_category" validate:"min=0,max=50"`
		MaxPerBrand          int     `json:"max_per_brand" validate:"min=0,max=50"`
		PriceRanges          int     `json:"price_ranges" validate:"min=0,max=10"`
		MinRating            float64 `json:"min_rating" validate:"min=0,max=5"`
		TargetDiversityScore float64 `json:"target_diversity_score" validate:"min=0,max=1"`
		MinCategories        int     `json:"min_categories" validate:"min=0,max=50"`
	}

	analyticsSummary struct {
		Date              string                       `json:"date"`
		Requests          int                          `json:"requests"`
		AvgDiversityScore float64                      `json:"avg_diversity_score"`
		AvgResponseTimeMs float64                      `json:"avg_response_time_ms"`
		Events            []domain.RecommendationEvent `json:"events"`
	}
)

// analytics may be nil when Redis is not configured.
func NewDiversityAdminHandler(
	cfgRepo DiversityConfigStore,
	analytics RecommendationAnalyticsReader,
) *DiversityAdminHandler {
	return &DiversityAdminHandler{
		validate:  validator.New(),
		cfgRepo:   cfgRepo,
		analytics: analytics,
	}
}

// GET /api/v1/admin/diversity/config?context=homepage
func (h *DiversityAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	pageContext := c.QueryParam("context")
	if pageContext == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "context is required",
		})
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, pageContext)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/diversity/config
// body: DiversityConfig JSON, zero fields fall back to defaults
func (h *DiversityAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body upsertDiversityConfigRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}

	cfg := domain.DiversityConfig{
		Context:              body.Context,
		MaxPerCategory:       body.MaxPerCategory,
		MaxPerBrand:          body.MaxPerBrand,
		PriceRanges:          body.PriceRanges,
		MinRating:            body.MinRating,
		TargetDiversityScore: body.TargetDiversityScore,
		MinCategories:        body.MinCategories,
	}
	if err := h.cfgRepo.UpsertConfig(ctx, cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

// GET /api/v1/admin/diversity/analytics?date=2026-01-31
func (h *DiversityAdminHandler) GetAnalytics(c echo.Context) error {
	if h.analytics == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "analytics store not configured",
		})
	}

	day := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid date, expected YYYY-MM-DD",
			})
		}
		day = parsed
	}

	events, err := h.analytics.DailyEvents(c.Request().Context(), day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, summarizeEvents(day, events))
}

func summarizeEvents(day time.Time, events []domain.RecommendationEvent) analyticsSummary {
	out := analyticsSummary{
		Date:     day.Format(time.DateOnly),
		Requests: len(events),
		Events:   events,
	}
	if out.Events == nil {
		out.Events = []domain.RecommendationEvent{}
	}
	if len(events) == 0 {
		return out
	}

	var score, took float64
	for _, e := range events {
		score += e.DiversityScore
		took += float64(e.ResponseTimeMs)
	}
	n := float64(len(events))
	out.AvgDiversityScore = score / n
	out.AvgResponseTimeMs = took / n
	return out
}
