package trader

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peerweb/trader-api/internal/interfaces/httpserver/handlers/traderhandler"
	"peerweb/trader-api/internal/interfaces/httpserver/responses"
)

// TraderRoute exposes the trader directory and trust ratings.
type TraderRoute struct {
	traderHandler *traderhandler.TraderHandler
}

func NewTraderRoute(traderHandler *traderhandler.TraderHandler) *TraderRoute {
	return &TraderRoute{traderHandler: traderHandler}
}

func (r *TraderRoute) RegisterRouter(router gin.IRouter) {
	group := router.Group("/traders")
	group.GET("", r.GetTraders)
	group.GET("/:name/trust", r.GetTrustRating)
}

// GetTraders godoc
// @Summary List known traders
// @Tags Trader API
// @Produce json
// @Success 200 {object} traderresponses.TraderListResponse
// @Security BearerAuth
// @Router /v1/traders [get]
func (r *TraderRoute) GetTraders(c *gin.Context) {
	resp, err := r.traderHandler.ListTraders(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list traders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrustRating godoc
// @Summary Rate a trader's trustworthiness
// @Description Evaluates the named trader's dossier and returns a 0-100 trust rating with an explanation.
// @Tags Trader API
// @Produce json
// @Param name path string true "Trader name"
// @Success 200 {object} traderresponses.TrustReportResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security BearerAuth
// @Router /v1/traders/{name}/trust [get]
func (r *TraderRoute) GetTrustRating(c *gin.Context) {
	resp, err := r.traderHandler.TrustRating(c.Request.Context(), c.Param("name"))
	if err != nil {
		responses.HandleError(c, err, "failed to rate trader")
		return
	}
	c.JSON(http.StatusOK, resp)
}
