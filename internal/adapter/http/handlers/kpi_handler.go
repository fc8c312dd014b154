package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bengkel_service/internal/domain/analytics"
	"bengkel_service/internal/usecase"
	"bengkel_service/pkg"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 25 * time.Second

type KPIHandlerConfig struct {
	// Location resolves the default period; nil means UTC.
	Location  *time.Location
	Heartbeat time.Duration
	Now       func() time.Time
	// StreamOpened is called per live client and returns its close callback.
	StreamOpened func() func()
	Logger       *slog.Logger
}

// KPIHandler serves the dashboard figures and the live KPI stream.
type KPIHandler struct {
	usecase usecase.IKPIUseCase
	cfg     KPIHandlerConfig
}

func NewKPIHandler(uc usecase.IKPIUseCase, cfg KPIHandlerConfig) *KPIHandler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Heartbeat <= 0 {
		cfg.Heartbeat = defaultHeartbeat
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.StreamOpened == nil {
		cfg.StreamOpened = func() func() { return func() {} }
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &KPIHandler{usecase: uc, cfg: cfg}
}

// GetKPIs returns the dashboard figures of a month.
//
// @Summary  KPI snapshot
// @Tags     kpis
// @Produce  json
// @Param    month  query     int  false  "Month (1-12)"
// @Param    year   query     int  false  "Year"
// @Success  200    {object}  analytics.KPISnapshot
// @Failure  400    {object}  pkg.HTTPError
// @Router   /kpis [get]
func (h *KPIHandler) GetKPIs(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}
	k, err := h.usecase.ComputeKPIs(c.Request.Context(), p)
	if err != nil {
		h.fail(c, "compute_kpis", err)
		return
	}
	c.JSON(http.StatusOK, k)
}

// @Summary  Profit and loss
// @Tags     reports
// @Produce  json
// @Param    month  query     int  false  "Month (1-12)"
// @Param    year   query     int  false  "Year"
// @Success  200    {object}  analytics.ProfitAndLoss
// @Router   /reports/profit-loss [get]
func (h *KPIHandler) GetProfitAndLoss(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}
	pl, err := h.usecase.ProfitAndLoss(c.Request.Context(), p)
	if err != nil {
		h.fail(c, "profit_and_loss", err)
		return
	}
	c.JSON(http.StatusOK, pl)
}

// StreamKPIs pushes a "kpi" server-sent event for the initial snapshot and
// after every ledger change, with periodic "heartbeat" events in between.
// Only the latest pending snapshot is delivered to a slow client.
func (h *KPIHandler) StreamKPIs(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	defer h.cfg.StreamOpened()()

	snapshots := make(chan analytics.KPISnapshot, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- h.usecase.Watch(ctx, p, func(k analytics.KPISnapshot) {
			for {
				select {
				case snapshots <- k:
					return
				default:
				}
				select {
				case <-snapshots:
				default:
				}
			}
		})
	}()

	heartbeat := time.NewTicker(h.cfg.Heartbeat)
	defer heartbeat.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case k := <-snapshots:
			c.SSEvent("kpi", k)
		case <-heartbeat.C:
			c.SSEvent("heartbeat", h.cfg.Now().Unix())
		case err := <-errc:
			select {
			case k := <-snapshots:
				c.SSEvent("kpi", k)
			default:
			}
			if err != nil {
				h.cfg.Logger.ErrorContext(ctx, "kpi stream stopped", "period", p.String(), "err", err)
				c.SSEvent("error", mapJobError(err).Localized(pkg.PrinterFor(c.GetHeader("Accept-Language"))))
			}
			c.Writer.Flush()
			return
		}
		c.Writer.Flush()
	}
}

// period reads ?month=&year=; a missing part defaults to the current month
// in the configured location.
func (h *KPIHandler) period(c *gin.Context) (analytics.Period, bool) {
	now := h.cfg.Now().In(h.cfg.Location)
	month, year := int(now.Month()), now.Year()

	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, errInvalidPeriod)
			return analytics.Period{}, false
		}
		month = n
	}
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, errInvalidPeriod)
			return analytics.Period{}, false
		}
		year = n
	}

	p, err := analytics.NewPeriod(year, time.Month(month))
	if err != nil {
		writeError(c, errInvalidPeriod)
		return analytics.Period{}, false
	}
	return p, true
}

func (h *KPIHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapJobError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.cfg.Logger.ErrorContext(c.Request.Context(), "kpi request failed", "op", op, "err", err)
	}
	writeError(c, appErr)
}
