package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	plantapp "github.com/siteops/backend/internal/application/plant"
	"github.com/siteops/backend/internal/domain/plant"
)

// PlantCheckHandler exposes daily plant check endpoints
type PlantCheckHandler struct {
	BaseHandler
	checkService *plantapp.PlantCheckService
}

// NewPlantCheckHandler creates a new PlantCheckHandler
func NewPlantCheckHandler(checkService *plantapp.PlantCheckService) *PlantCheckHandler {
	return &PlantCheckHandler{checkService: checkService}
}

// PlantCheckResponse represents a recorded plant check
type PlantCheckResponse struct {
	ID        uuid.UUID `json:"id"`
	PlantID   uuid.UUID `json:"plant_id"`
	PlantName string    `json:"plant_name"`
	CheckedBy string    `json:"checked_by"`
	CheckedAt time.Time `json:"checked_at"`
	Status    string    `json:"status"`
	Defects   string    `json:"defects,omitempty"`
}

func toPlantCheckResponse(check *plant.PlantCheck) PlantCheckResponse {
	return PlantCheckResponse{
		ID:        check.ID,
		PlantID:   check.PlantID,
		PlantName: check.PlantName,
		CheckedBy: check.CheckedBy,
		CheckedAt: check.CheckedAt,
		Status:    string(check.Status),
		Defects:   check.Defects,
	}
}

// RecordCheckRequest represents a request to record a plant check
type RecordCheckRequest struct {
	PlantID   string `json:"plant_id" binding:"required,uuid"`
	PlantName string `json:"plant_name" binding:"required"`
	CheckedBy string `json:"checked_by" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=pass defect"`
	Defects   string `json:"defects"`
}

// RecordCheck records a plant check. Defect checks require a description.
func (h *PlantCheckHandler) RecordCheck(c *gin.Context) {
	var req RecordCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	plantID, _ := uuid.Parse(req.PlantID)

	check, err := h.checkService.RecordCheck(c.Request.Context(), plantID, req.PlantName, req.CheckedBy, plant.CheckStatus(req.Status), req.Defects)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toPlantCheckResponse(check))
}

// WeekChecks returns the checks recorded in a week
func (h *PlantCheckHandler) WeekChecks(c *gin.Context) {
	ref, ok := parseWeekParam(c.Query("week"))
	if !ok {
		h.BadRequest(c, "Invalid week, expected YYYY-MM-DD")
		return
	}
	if ref.IsZero() {
		ref = time.Now()
	}

	checks, err := h.checkService.ChecksForWeek(c.Request.Context(), ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]PlantCheckResponse, 0, len(checks))
	for i := range checks {
		responses = append(responses, toPlantCheckResponse(&checks[i]))
	}
	h.Success(c, responses)
}

// RegisterRoutes registers the plant check routes
func (h *PlantCheckHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plantGroup := rg.Group("/plant")
	{
		plantGroup.POST("/checks", h.RecordCheck)
		plantGroup.GET("/checks", h.WeekChecks)
	}
}
