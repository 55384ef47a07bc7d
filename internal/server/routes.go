package server

import (
	"net/http"

	"retail/internal/config"
	"retail/internal/handler"
	"retail/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Product *handler.ProductHandler
	Store   *handler.StoreHandler
	Person  *handler.PersonHandler
	Order   *handler.OrderHandler
}

type healthResponse struct {
	Status string `json:"status"`
}

// 公開APIと/admin（JWT + ADMIN）を登録
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, db Pinger, gatherer prometheus.Gatherer) {
	e.GET("/healthz", func(c echo.Context) error {
		if db != nil {
			if err := db.PingContext(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
	})
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	h.Product.RegisterRoutes(e, admin)
	h.Store.RegisterRoutes(e, admin)
	h.Person.RegisterRoutes(e, admin)
	h.Order.RegisterRoutes(e, admin)
}
