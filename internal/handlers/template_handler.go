package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	"github.com/glowdesk/salon-scheduler/internal/wire"
)

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

func (h *TemplateHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)

	var tpls []models.SplitTemplate
	if err := h.db.
		Preload("Steps").
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&tpls).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Could not list templates.")
		return
	}

	out := make([]wire.Template, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, t.ToWire())
	}
	httpresp.OK(c, wire.TemplatesResponse{Templates: out})
}

type TemplateStepRequest struct {
	StepType        string `json:"step_type" binding:"required"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5"`
	SortOrder       int    `json:"sort_order"`
	IsGap           bool   `json:"is_gap"`
}

type CreateTemplateRequest struct {
	Name        string                `json:"name" binding:"required"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Steps       []TemplateStepRequest `json:"steps" binding:"required,min=1"`
}

func (h *TemplateHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed template payload.")
		return
	}

	tpl := models.SplitTemplate{
		SalonID:     salonID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	for i, s := range req.Steps {
		order := s.SortOrder
		if order == 0 {
			order = i
		}
		tpl.Steps = append(tpl.Steps, models.SplitTemplateStep{
			StepType:        s.StepType,
			Label:           s.Label,
			DurationMinutes: s.DurationMinutes,
			SortOrder:       order,
			IsGap:           s.IsGap,
		})
	}

	if err := h.db.Create(&tpl).Error; err != nil {
		httperr.Internal(c, "failed_to_create_template", "Could not create template.")
		return
	}

	httpresp.Created(c, tpl.ToWire())
}
