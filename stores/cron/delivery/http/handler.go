package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/delivery"
	"github.com/x-xyz/auctionindexer/domain"
)

const msgAlreadyRunning = "already running"

type handler struct {
	sweeper domain.Sweeper
}

// New registers the cron tick. An external scheduler is expected to call it.
func New(e *echo.Echo, sweeper domain.Sweeper) {
	h := &handler{sweeper}
	e.GET("/api/refreshcron", h.refreshCron)
}

// refreshCron godoc
//
//	@Description	Runs one bounded sweep over the unsettled auctions. Answers "already running" while another sweep holds the lock.
//	@Tags			cron
//	@Produce		json
//	@Success		200	{object}	domain.SweepReport
//	@Failure		500
//	@Router			/api/refreshcron [get]
func (h *handler) refreshCron(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	report, err := h.sweeper.Sweep(ctx)
	if errors.Is(err, domain.ErrCronRunning) {
		return c.String(http.StatusOK, msgAlreadyRunning)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
