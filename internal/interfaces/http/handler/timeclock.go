package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workforceapp "github.com/siteops/backend/internal/application/workforce"
	"github.com/siteops/backend/internal/domain/workforce"
	"github.com/siteops/backend/internal/interfaces/http/dto"
)

// TimeClockHandler exposes employee and clock in/out endpoints
type TimeClockHandler struct {
	BaseHandler
	clockService *workforceapp.TimeClockService
}

// NewTimeClockHandler creates a new TimeClockHandler
func NewTimeClockHandler(clockService *workforceapp.TimeClockService) *TimeClockHandler {
	return &TimeClockHandler{clockService: clockService}
}

// EmployeeResponse represents an employee
type EmployeeResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Role   string    `json:"role,omitempty"`
	Active bool      `json:"active"`
}

func toEmployeeResponse(e *workforce.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Role:   e.Role,
		Active: e.Active,
	}
}

// TimeEntryResponse represents a clock-in/out record
type TimeEntryResponse struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	Site       string     `json:"site,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	Open       bool       `json:"open"`
}

func toTimeEntryResponse(entry *workforce.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,
		ClockIn:    entry.ClockIn,
		ClockOut:   entry.ClockOut,
		Site:       entry.Site,
		Notes:      entry.Notes,
		Open:       entry.IsOpen(),
	}
}

// CreateEmployeeRequest represents a request to add an employee
type CreateEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role"`
}

// ClockInRequest represents a clock-in request
type ClockInRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Site       string `json:"site"`
}

// ClockOutRequest represents a clock-out request
type ClockOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Notes      string `json:"notes"`
}

// ListEmployees returns all employees
func (h *TimeClockHandler) ListEmployees(c *gin.Context) {
	employees, err := h.clockService.Employees(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}
	h.Success(c, responses)
}

// CreateEmployee adds a new employee
func (h *TimeClockHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	employee, err := h.clockService.CreateEmployee(c.Request.Context(), req.Name, req.Role)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toEmployeeResponse(employee))
}

// ClockIn opens a time entry for an employee
func (h *TimeClockHandler) ClockIn(c *gin.Context) {
	var req ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	employeeID, _ := uuid.Parse(req.EmployeeID)

	entry, err := h.clockService.ClockIn(c.Request.Context(), employeeID, req.Site)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toTimeEntryResponse(entry))
}

// ClockOut closes the employee's open time entry
func (h *TimeClockHandler) ClockOut(c *gin.Context) {
	var req ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	employeeID, _ := uuid.Parse(req.EmployeeID)

	entry, err := h.clockService.ClockOut(c.Request.Context(), employeeID, req.Notes)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toTimeEntryResponse(entry))
}

// ClockStatus returns the employee's open time entry, if any
func (h *TimeClockHandler) ClockStatus(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}
	employeeID, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	entry, err := h.clockService.Status(c.Request.Context(), employeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if entry == nil {
		h.Success(c, gin.H{"on_clock": false})
		return
	}
	h.Success(c, gin.H{"on_clock": true, "entry": toTimeEntryResponse(entry)})
}

// RegisterRoutes registers the workforce time clock routes
func (h *TimeClockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workforceGroup := rg.Group("/workforce")
	{
		workforceGroup.GET("/employees", h.ListEmployees)
		workforceGroup.POST("/employees", h.CreateEmployee)
		workforceGroup.POST("/clock-in", h.ClockIn)
		workforceGroup.POST("/clock-out", h.ClockOut)
		workforceGroup.GET("/employees/:id/clock", h.ClockStatus)
	}
}
