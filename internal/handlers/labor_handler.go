package handlers

import (
	"net/http"

	"farm_manager/internal/models"
	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LaborHandler struct {
	laborService services.LaborService
}

func NewLaborHandler(laborService services.LaborService) *LaborHandler {
	return &LaborHandler{laborService: laborService}
}

type workerRequest struct {
	Name       string          `json:"name" binding:"required"`
	Phone      string          `json:"phone"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r workerRequest) input() services.WorkerInput {
	return services.WorkerInput{Name: r.Name, Phone: r.Phone, HourlyRate: r.HourlyRate}
}

func (h *LaborHandler) ListWorkers(c *gin.Context) {
	workers, err := h.laborService.ListWorkers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}

func (h *LaborHandler) CreateWorker(c *gin.Context) {
	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	worker, err := h.laborService.CreateWorker(req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

func (h *LaborHandler) UpdateWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	worker, err := h.laborService.UpdateWorker(id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *LaborHandler) DeleteWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.laborService.DeleteWorker(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}

type laborRecordRequest struct {
	WorkerID    uint            `json:"worker_id" binding:"required"`
	WorkDate    string          `json:"work_date" binding:"required"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	Note        string          `json:"note"`
}

func (h *LaborHandler) ListRecords(c *gin.Context) {
	records, err := h.laborService.ListRecords()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *LaborHandler) CreateRecord(c *gin.Context) {
	var req laborRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := parseDate("work_date", req.WorkDate)
	if err != nil {
		respondError(c, err)
		return
	}

	record, err := h.laborService.CreateRecord(services.LaborRecordInput{
		WorkerID:    req.WorkerID,
		WorkDate:    date,
		HoursWorked: req.HoursWorked,
		Note:        req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *LaborHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		PaymentStatus models.LaborPaymentStatus `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := h.laborService.UpdatePaymentStatus(id, req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *LaborHandler) DeleteRecord(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.laborService.DeleteRecord(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}
