package handlers

import (
	"net/http"

	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type HarvestHandler struct {
	harvestService services.HarvestService
}

func NewHarvestHandler(harvestService services.HarvestService) *HarvestHandler {
	return &HarvestHandler{harvestService: harvestService}
}

type cropTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *HarvestHandler) ListCropTypes(c *gin.Context) {
	cropTypes, err := h.harvestService.ListCropTypes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cropTypes)
}

func (h *HarvestHandler) CreateCropType(c *gin.Context) {
	var req cropTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cropType, err := h.harvestService.CreateCropType(services.CropTypeInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cropType)
}

func (h *HarvestHandler) UpdateCropType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cropTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cropType, err := h.harvestService.UpdateCropType(id, services.CropTypeInput{Name: req.Name, Description: req.Description})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cropType)
}

func (h *HarvestHandler) DeleteCropType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.harvestService.DeleteCropType(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}

type harvestRequest struct {
	GardenID     uint            `json:"garden_id" binding:"required"`
	CropTypeID   uint            `json:"crop_type_id" binding:"required"`
	HarvestDate  string          `json:"harvest_date" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit" binding:"required"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Note         string          `json:"note"`
}

func (r harvestRequest) input() (services.HarvestInput, error) {
	date, err := parseDate("harvest_date", r.HarvestDate)
	if err != nil {
		return services.HarvestInput{}, err
	}
	return services.HarvestInput{
		GardenID:     r.GardenID,
		CropTypeID:   r.CropTypeID,
		HarvestDate:  date,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		PricePerUnit: r.PricePerUnit,
		Note:         r.Note,
	}, nil
}

// ListHarvests lists every harvest, or those of one day with ?date=YYYY-MM-DD.
func (h *HarvestHandler) ListHarvests(c *gin.Context) {
	date := c.Query("date")
	day, err := parseOptionalDate("date", &date)
	if err != nil {
		respondError(c, err)
		return
	}

	harvests, err := h.harvestService.ListHarvests(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, harvests)
}

func (h *HarvestHandler) CreateHarvest(c *gin.Context) {
	var req harvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondError(c, err)
		return
	}

	harvest, err := h.harvestService.CreateHarvest(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, harvest)
}

func (h *HarvestHandler) UpdateHarvest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req harvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	input, err := req.input()
	if err != nil {
		respondError(c, err)
		return
	}

	harvest, err := h.harvestService.UpdateHarvest(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, harvest)
}

func (h *HarvestHandler) DeleteHarvest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.harvestService.DeleteHarvest(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, msgDeleted)
}
