package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"myDiverseMarket/domain"
	"myDiverseMarket/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type nopService struct{}

func (nopService) Recommend(context.Context, domain.DiverseRecommendationRequest) (domain.DiverseRecommendationResponse, error) {
	return domain.DiverseRecommendationResponse{Recommendations: []domain.Item{}}, nil
}

func (nopService) DebugRecommend(context.Context, domain.DiverseRecommendationRequest) (domain.DebugRecommendationResponse, error) {
	return domain.DebugRecommendationResponse{}, nil
}

type nopStore struct{}

func (nopStore) GetConfig(context.Context, string) (domain.DiversityConfig, bool, error) {
	return domain.DiversityConfig{}, false, nil
}

func (nopStore) UpsertConfig(context.Context, domain.DiversityConfig) error { return nil }

func newServer() *echo.Echo {
	e := echo.New()
	api := e.Group("/api/v1")
	SetDiverseRecommendationRoutes(api, rest.NewDiverseRecommendationHandler(nopService{}))
	SetDiversityAdminRoutes(api, rest.NewDiversityAdminHandler(nopStore{}, nil))
	SetOpsRoutes(e, rest.NewHealthHandler(nil))
	return e
}

func TestRoutes(t *testing.T) {
	e := newServer()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"anonymous recommendations", http.MethodPost, "/api/v1/recommendations/diverse", http.StatusOK},
		{"debug needs auth", http.MethodPost, "/api/v1/recommendations/diverse/debug", http.StatusUnauthorized},
		{"admin needs auth", http.MethodGet, "/api/v1/admin/diversity/config?context=homepage", http.StatusUnauthorized},
		{"health", http.MethodGet, "/healthz", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
