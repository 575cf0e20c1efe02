// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedelogo/internal/http/handlers"
	"pedelogo/internal/http/middleware"
	"pedelogo/internal/maps"
	"pedelogo/internal/modules/settlement"
)

func NewRouter(settlementSvc *settlement.Service, geocoder *maps.Geocoder) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	settlementHandler := handlers.NewSettlementHandler(settlementSvc)
	r.POST("/api/settlements", settlementHandler.Settle)
	r.GET("/api/settlements/:order_id", settlementHandler.Get)

	quoteHandler := handlers.NewQuoteHandler(settlementSvc, geocoder)
	r.POST("/api/quotes", quoteHandler.Quote)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
