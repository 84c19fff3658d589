package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)

	var employees []models.Employee
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&employees).Error; err != nil {
		httperr.Internal(c, "failed_to_list_employees", "Could not list employees.")
		return
	}

	httpresp.List(c, employees)
}

type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
	Color     string `json:"color"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed employee payload.")
		return
	}

	emp := models.Employee{
		SalonID:   salonID,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		Role:      req.Role,
		Color:     req.Color,
	}
	if err := h.db.Create(&emp).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Could not create employee.")
		return
	}

	httpresp.Created(c, emp)
}
