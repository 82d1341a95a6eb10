package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workforceapp "github.com/siteops/backend/internal/application/workforce"
	"github.com/siteops/backend/internal/interfaces/http/dto"
)

// TimesheetHandler exposes weekly timesheet endpoints
type TimesheetHandler struct {
	BaseHandler
	timesheetService *workforceapp.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler
func NewTimesheetHandler(timesheetService *workforceapp.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

// parseWeekParam parses the optional "week" query parameter. Any date
// within the desired week selects it; empty means the current week.
func parseWeekParam(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// EmployeeTimesheet returns one employee's timesheet for a week
func (h *TimesheetHandler) EmployeeTimesheet(c *gin.Context) {
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

	ref, ok := parseWeekParam(c.Query("week"))
	if !ok {
		h.BadRequest(c, "Invalid week, expected YYYY-MM-DD")
		return
	}

	sheet, err := h.timesheetService.ForEmployee(c.Request.Context(), employeeID, ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sheet)
}

// WeekTimesheets returns the timesheets of all active employees for a week
func (h *TimesheetHandler) WeekTimesheets(c *gin.Context) {
	ref, ok := parseWeekParam(c.Query("week"))
	if !ok {
		h.BadRequest(c, "Invalid week, expected YYYY-MM-DD")
		return
	}

	sheets, err := h.timesheetService.ForWeek(c.Request.Context(), ref)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sheets)
}

// RegisterRoutes registers the timesheet routes
func (h *TimesheetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workforceGroup := rg.Group("/workforce")
	{
		workforceGroup.GET("/timesheets", h.WeekTimesheets)
		workforceGroup.GET("/employees/:id/timesheet", h.EmployeeTimesheet)
	}
}
