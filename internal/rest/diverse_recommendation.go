package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/business/recommendation"
	"myDiverseMarket/domain"
	"myDiverseMarket/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	HeaderRegion     = "X-Region"
	recommendTimeout = 10 * time.Second
)

type (
	DiverseRecommendationHandler struct {
		validate *validator.Validate
		service  DiverseRecommendationService
	}

	DiverseRecommendationService interface {
		Recommend(ctx context.Context, req domain.DiverseRecommendationRequest) (domain.DiverseRecommendationResponse, error)
		DebugRecommend(ctx context.Context, req domain.DiverseRecommendationRequest) (domain.DebugRecommendationResponse, error)
	}

	DiverseRecommendationBody struct {
		ExcludeIDs    []uint64                     `json:"exclude_ids" validate:"max=500"`
		ExcludeGroups []uint64                     `json:"exclude_groups" validate:"max=100"`
		ShownIDs      []uint64                     `json:"shown_ids" validate:"max=500"`
		Limit         int                          `json:"limit"`
		Context       string                       `json:"context" validate:"omitempty,oneof=homepage product_page store_page category_page"`
		Algorithm     string                       `json:"algorithm" validate:"omitempty,oneof=hybrid content_based collaborative"`
		Mode          string                       `json:"mode" validate:"omitempty,oneof=balanced category_diverse price_diverse"`
		Region        string                       `json:"region" validate:"max=64"`
		Options       domain.DiversityOptionsInput `json:"options"`
	}
)

func NewDiverseRecommendationHandler(svc DiverseRecommendationService) *DiverseRecommendationHandler {
	return &DiverseRecommendationHandler{
		validate: validator.New(),
		service:  svc,
	}
}

// bind reads and validates the body. The X-Region header wins over the
// body field; user_id is set by the auth middleware when present.
func (h *DiverseRecommendationHandler) bind(c echo.Context) (domain.DiverseRecommendationRequest, error) {
	var body DiverseRecommendationBody
	if err := c.Bind(&body); err != nil {
		return domain.DiverseRecommendationRequest{}, err
	}
	if err := h.validate.Struct(&body); err != nil {
		return domain.DiverseRecommendationRequest{}, err
	}

	region := body.Region
	if hdr := c.Request().Header.Get(HeaderRegion); hdr != "" {
		region = hdr
	}

	userID, _ := c.Get("user_id").(uint)

	return domain.DiverseRecommendationRequest{
		UserID:        userID,
		ExcludeIDs:    body.ExcludeIDs,
		ExcludeGroups: body.ExcludeGroups,
		ShownIDs:      body.ShownIDs,
		Limit:         body.Limit,
		Context:       body.Context,
		Algorithm:     body.Algorithm,
		Mode:          body.Mode,
		Region:        region,
		Options:       body.Options,
	}, nil
}

// POST /api/v1/recommendations/diverse
func (h *DiverseRecommendationHandler) Recommend(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), recommendTimeout)
	defer cancel()

	resp, err := h.service.Recommend(ctx, req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

// POST /api/v1/recommendations/diverse/debug
func (h *DiverseRecommendationHandler) Debug(c echo.Context) error {
	if _, ok := c.Get("user_id").(uint); !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	req, err := h.bind(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), recommendTimeout)
	defer cancel()

	resp, err := h.service.DebugRecommend(ctx, req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(resp))
}

func (h *DiverseRecommendationHandler) fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("diverse recommendation failed",
			"trace_id", recommendation.TraceIDFromContext(c.Request().Context()),
			"status", status,
			"error", err,
		)
	}
	switch status {
	case http.StatusBadRequest:
		return c.JSON(status, ResponseError{Message: err.Error()})
	case http.StatusServiceUnavailable:
		return c.JSON(status, ResponseError{Message: recommendation.ErrCandidateSource.Error()})
	default:
		return c.JSON(status, ResponseError{Message: http.StatusText(status)})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, diversity.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, recommendation.ErrCandidateSource):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
