package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	hcdomain "github.com/x-xyz/auctionindexer/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{healthCheck: us}
	e.GET("/health", h.check)
}

// check godoc
//
//	@Description	Probes mongo, the redis cache and the chain node. Answers 503 when any of them fails.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthcheck.Report
//	@Failure		503	{object}	healthcheck.Report
//	@Router			/health [get]
func (h *handler) check(c echo.Context) error {
	r := h.healthCheck.Check(c.Get("ctx").(ctx.Ctx))
	if !r.Healthy {
		return c.JSON(http.StatusServiceUnavailable, r)
	}
	return c.JSON(http.StatusOK, r)
}
