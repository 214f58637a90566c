package handlers

import (
	"net/http"

	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GardenHandler serves the gardens of the logged-in user.
type GardenHandler struct {
	gardenService services.GardenService
}

func NewGardenHandler(gardenService services.GardenService) *GardenHandler {
	return &GardenHandler{gardenService: gardenService}
}

type gardenRequest struct {
	Name         string          `json:"name" binding:"required"`
	Location     string          `json:"location"`
	Area         decimal.Decimal `json:"area"`
	NumberOfBeds int             `json:"number_of_beds"`
}

func (r gardenRequest) input() services.GardenInput {
	return services.GardenInput{
		Name:         r.Name,
		Location:     r.Location,
		Area:         r.Area,
		NumberOfBeds: r.NumberOfBeds,
	}
}

func (h *GardenHandler) List(c *gin.Context) {
	gardens, err := h.gardenService.ListGardens(currentSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gardens)
}

func (h *GardenHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	garden, err := h.gardenService.GetGarden(id, currentSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, garden)
}

func (h *GardenHandler) Create(c *gin.Context) {
	var req gardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	garden, err := h.gardenService.CreateGarden(currentSession(c).UserID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, garden)
}

func (h *GardenHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req gardenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	garden, err := h.gardenService.UpdateGarden(id, currentSession(c).UserID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, garden)
}

func (h *GardenHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.gardenService.DeleteGarden(id, currentSession(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}
