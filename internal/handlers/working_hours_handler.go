package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// ensureEmployee loads the employee and checks it belongs to the caller's
// salon, so one salon cannot edit another salon's schedule.
func (h *WorkingHoursHandler) ensureEmployee(c *gin.Context) (*models.Employee, bool) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	employeeID := c.Param("id")

	var emp models.Employee
	err := h.db.Where("id = ? AND salon_id = ?", employeeID, salonID).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "employee_not_found", "Employee not found.")
		} else {
			httperr.Internal(c, "failed_to_get_employee", "Could not load employee.")
		}
		return nil, false
	}
	return &emp, true
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	emp, ok := h.ensureEmployee(c)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("employee_id = ?", emp.ID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	emp, ok := h.ensureEmployee(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed working hours payload.")
		return
	}

	if err := h.db.Where("employee_id = ?", emp.ID).Delete(&models.WorkingHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Could not replace working hours.")
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			EmployeeID: emp.ID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
			return
		}
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
