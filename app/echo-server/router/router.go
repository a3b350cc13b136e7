package router

import (
	"herbalMart/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.GET("/me", handler.GetProfile, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authOptional echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Personalized, authOptional)
	reco.GET("", handler.PersonalizedByToken)

	products := api.Group("/products")
	products.GET("/:id/similar", handler.Similar)
	products.GET("/:id/complementary", handler.Complementary)
	products.GET("/:id/bundles", handler.Bundles)

	api.GET("/search", handler.Search)
	api.GET("/trending", handler.Trending)
	api.GET("/concerns", handler.ByConcern)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
