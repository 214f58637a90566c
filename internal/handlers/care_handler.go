package handlers

import (
	"net/http"

	"farm_manager/internal/models"
	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CareHandler struct {
	careService services.CareService
}

func NewCareHandler(careService services.CareService) *CareHandler {
	return &CareHandler{careService: careService}
}

type careDetailRequest struct {
	InventoryItemID uint            `json:"inventory_item_id" binding:"required"`
	QuantityUsed    decimal.Decimal `json:"quantity_used"`
}

type careActivityRequest struct {
	GardenID     uint                `json:"garden_id" binding:"required"`
	ActivityType models.ActivityType `json:"activity_type" binding:"required"`
	ActivityDate string              `json:"activity_date" binding:"required"`
	Note         string              `json:"note"`
	Details      []careDetailRequest `json:"details" binding:"dive"`
}

func (h *CareHandler) List(c *gin.Context) {
	activities, err := h.careService.ListActivities()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *CareHandler) Create(c *gin.Context) {
	var req careActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	date, err := parseDate("activity_date", req.ActivityDate)
	if err != nil {
		respondError(c, err)
		return
	}

	input := services.CareActivityInput{
		GardenID:     req.GardenID,
		ActivityType: req.ActivityType,
		ActivityDate: date,
		Note:         req.Note,
	}
	for _, d := range req.Details {
		input.Details = append(input.Details, services.CareDetailInput{
			InventoryItemID: d.InventoryItemID,
			QuantityUsed:    d.QuantityUsed,
		})
	}

	activity, err := h.careService.CreateActivity(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func (h *CareHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.careService.DeleteActivity(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}
