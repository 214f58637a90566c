package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"farm_manager/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaborRecords(t *testing.T) {
	s := newTestServer(t)
	token := s.login("a@farm.vn")

	w := s.do(http.MethodPost, "/api/workers", token, gin.H{"name": "Anh Tư", "hourly_rate": 30000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var worker models.Worker
	decode(t, w, &worker)

	w = s.do(http.MethodPost, "/api/labor-records", token, gin.H{
		"worker_id":    worker.ID,
		"work_date":    "2024-05-02",
		"hours_worked": 7.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var record models.LaborRecord
	decode(t, w, &record)
	assert.True(t, record.TotalAmount.Equal(decimal.NewFromInt(225000)), record.TotalAmount.String())
	assert.Equal(t, models.LaborUnpaid, record.PaymentStatus)

	path := fmt.Sprintf("/api/labor-records/%d", record.ID)
	w = s.do(http.MethodPatch, path+"/payment", token, gin.H{"payment_status": "settled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, path+"/payment", token, gin.H{"payment_status": "paid"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &record)
	assert.Equal(t, models.LaborPaid, record.PaymentStatus)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/workers/%d", worker.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodDelete, fmt.Sprintf("/api/workers/%d", worker.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
