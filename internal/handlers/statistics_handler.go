package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StatisticsHandler struct {
	statisticsService services.StatisticsService
	now               func() time.Time
}

func NewStatisticsHandler(statisticsService services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, now: time.Now}
}

// dateRange reads ?start= and ?end=. A missing bound falls back to the
// current month.
func (h *StatisticsHandler) dateRange(c *gin.Context) (services.DateRange, error) {
	r := services.CurrentMonth(h.now())
	if raw := c.Query("start"); raw != "" {
		start, err := parseDate("start", raw)
		if err != nil {
			return r, err
		}
		r.Start = start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := parseDate("end", raw)
		if err != nil {
			return r, err
		}
		r.End = end
	}
	return r, nil
}

func (h *StatisticsHandler) Summary(c *gin.Context) {
	r, err := h.dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.statisticsService.GetSummary(r)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export sends the workbook as an attachment. It is built in memory first
// so a failure still produces a JSON error.
func (h *StatisticsHandler) Export(c *gin.Context) {
	r, err := h.dateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.statisticsService.ExportXLSX(r, &buf); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("thong-ke_%s_%s.xlsx", r.Start.Format(dateLayout), r.End.Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
