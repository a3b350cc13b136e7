package rest

import (
	"context"
	"net/http"
	"time"

	"herbalMart/domain"
	"herbalMart/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendService interface {
		Personalized(ctx context.Context, prefs domain.UserPreferences, limit int) ([]domain.RecommendationScore, error)
		PersonalizedForUser(ctx context.Context, userID uint, prefs domain.UserPreferences, limit int) ([]domain.RecommendationScore, error)
		Similar(ctx context.Context, productID string, limit int) ([]domain.Product, error)
		Complementary(ctx context.Context, productID string, limit int) ([]domain.Product, error)
		Bundles(ctx context.Context, productID string) ([]domain.Bundle, error)
		Search(ctx context.Context, query string, limit int) ([]domain.Product, error)
		Trending(ctx context.Context, limit int) ([]domain.Product, error)
		ByConcern(ctx context.Context, concern string) ([]domain.Product, error)
		EncodePreferences(prefs domain.UserPreferences) (string, error)
		DecodePreferences(token string) (domain.UserPreferences, error)
	}

	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	PersonalizedRequest struct {
		Categories        []string           `json:"categories"`
		PriceRange        *domain.PriceRange `json:"price_range"`
		Concerns          []string           `json:"concerns"`
		PreviousPurchases []string           `json:"previous_purchases"`
		ViewedProducts    []string           `json:"viewed_products"`
		Age               *int               `json:"age" validate:"omitempty,gte=0,lte=120"`
		Gender            string             `json:"gender" validate:"omitempty,oneof=male female other"`
		N                 int                `json:"n"`
	}

	TokenRecommendQuery struct {
		Token string `query:"token" validate:"required"`
		N     int    `query:"n"`
	}

	SearchQuery struct {
		Q string `query:"q" validate:"required"`
		N int    `query:"n"`
	}

	ConcernQuery struct {
		Q string `query:"q" validate:"required"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          10 * time.Second,
	}
}

func (r PersonalizedRequest) preferences() domain.UserPreferences {
	return domain.UserPreferences{
		Categories:        r.Categories,
		PriceRange:        r.PriceRange,
		Concerns:          r.Concerns,
		PreviousPurchases: r.PreviousPurchases,
		ViewedProducts:    r.ViewedProducts,
		Age:               r.Age,
		Gender:            domain.Gender(r.Gender),
	}
}

// POST /api/v1/recommendations
func (h *RecommendHandler) Personalized(c echo.Context) error {
	start := time.Now()

	var req PersonalizedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prefs := req.preferences()

	var (
		recs []domain.RecommendationScore
		err  error
	)
	if userID, ok := c.Get("user_id").(uint); ok {
		recs, err = h.recommendService.PersonalizedForUser(ctx, userID, prefs, req.N)
	} else {
		recs, err = h.recommendService.Personalized(ctx, prefs, req.N)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	token, err := h.recommendService.EncodePreferences(prefs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("personalized").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"recommendations": recs,
		"prefs_token":     token,
	}))
}

// GET /api/v1/recommendations?token=...&n=10
func (h *RecommendHandler) PersonalizedByToken(c echo.Context) error {
	start := time.Now()

	var q TokenRecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	prefs, err := h.recommendService.DecodePreferences(q.Token)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid preferences token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.Personalized(ctx, prefs, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues("personalized").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/products/:id/similar?n=6
func (h *RecommendHandler) Similar(c echo.Context) error {
	return h.targetList(c, "similar", h.recommendService.Similar)
}

// GET /api/v1/products/:id/complementary?n=4
func (h *RecommendHandler) Complementary(c echo.Context) error {
	return h.targetList(c, "complementary", h.recommendService.Complementary)
}

func (h *RecommendHandler) targetList(
	c echo.Context,
	entryPoint string,
	fn func(ctx context.Context, productID string, limit int) ([]domain.Product, error),
) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing product id"})
	}

	n := intQueryParam(c, "n")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := fn(ctx, productID, n)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues(entryPoint).Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/products/:id/bundles
func (h *RecommendHandler) Bundles(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "missing product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bundles, err := h.recommendService.Bundles(ctx, productID)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues("bundles").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(bundles))
}

// GET /api/v1/search?q=neem&n=20
func (h *RecommendHandler) Search(c echo.Context) error {
	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recommendService.Search(ctx, q.Q, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues("search").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/trending?n=8
func (h *RecommendHandler) Trending(c echo.Context) error {
	n := intQueryParam(c, "n")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recommendService.Trending(ctx, n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues("trending").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/concerns?q=hair+fall
func (h *RecommendHandler) ByConcern(c echo.Context) error {
	var q ConcernQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recommendService.ByConcern(ctx, q.Q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.RecommendRequests.WithLabelValues("concern").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}
