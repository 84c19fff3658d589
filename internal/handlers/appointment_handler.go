package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	"github.com/glowdesk/salon-scheduler/internal/models"
	ucAppointment "github.com/glowdesk/salon-scheduler/internal/usecase/appointment"
	"github.com/glowdesk/salon-scheduler/internal/wire"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db              *gorm.DB
	createUC        *ucAppointment.CreateAppointment
	updateUC        *ucAppointment.UpdateAppointment
	removeUC        *ucAppointment.RemoveAppointment
	splitUC         *ucAppointment.SplitAppointment
	applyTemplateUC *ucAppointment.ApplyTemplate
	listUC          *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	removeUC *ucAppointment.RemoveAppointment,
	splitUC *ucAppointment.SplitAppointment,
	applyTemplateUC *ucAppointment.ApplyTemplate,
	listUC *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:              db,
		createUC:        createUC,
		updateUC:        updateUC,
		removeUC:        removeUC,
		splitUC:         splitUC,
		applyTemplateUC: applyTemplateUC,
		listUC:          listUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)

	var date time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDateForSalon(h.db, salonID, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		date = parsed
	}

	aps, err := h.listUC.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	out := make([]wire.Appointment, 0, len(aps))
	for _, ap := range aps {
		out = append(out, ap.ToWire())
	}
	httpresp.OK(c, wire.AppointmentsResponse{Appointments: out})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req wire.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed appointment payload.")
		return
	}

	segs, start, end, err := parseWireSegments(req.Segments)
	if err != nil {
		httperr.BadRequest(c, "invalid_segment_time", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		SalonID:         salonID,
		UserID:          userID,
		EmployeeID:      req.EmployeeID,
		ClientName:      req.ClientName,
		ServiceName:     req.ServiceName,
		ServiceCategory: req.ServiceCategory,
		Status:          req.Status,
		Notes:           derefString(req.Notes),
		CustomerID:      req.CustomerID,
		Start:           start,
		End:             end,
		Segments:        segs,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.Created(c, wire.AppointmentResponse{Appointment: ap.ToWire()})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req wire.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed appointment payload.")
		return
	}

	segs, start, end, err := parseWireSegments(req.Segments)
	if err != nil {
		httperr.BadRequest(c, "invalid_segment_time", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		SalonID:         salonID,
		UserID:          userID,
		AppointmentID:   id,
		EmployeeID:      req.EmployeeID,
		ClientName:      req.ClientName,
		ServiceName:     req.ServiceName,
		ServiceCategory: req.ServiceCategory,
		Status:          req.Status,
		Notes:           derefString(req.Notes),
		Start:           start,
		End:             end,
		Segments:        segs,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, wire.AppointmentResponse{Appointment: ap.ToWire()})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if err := h.removeUC.Execute(c.Request.Context(), salonID, userID, id); err != nil {
		writeUsecaseError(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SPLIT
// ======================================================

func (h *AppointmentHandler) Split(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req wire.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed split payload.")
		return
	}

	segs, _, _, err := parseWireSegments(req.Segments)
	if err != nil {
		httperr.BadRequest(c, "invalid_segment_time", err.Error())
		return
	}

	ap, err := h.splitUC.Execute(c.Request.Context(), ucAppointment.SplitAppointmentInput{
		SalonID:       salonID,
		UserID:        userID,
		AppointmentID: id,
		Segments:      segs,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, wire.AppointmentResponse{Appointment: ap.ToWire()})
}

// ======================================================
// APPLY TEMPLATE
// ======================================================

func (h *AppointmentHandler) ApplyTemplate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req wire.ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed apply-template payload.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be ISO 8601.")
		return
	}

	ap, err := h.applyTemplateUC.Execute(c.Request.Context(), ucAppointment.ApplyTemplateInput{
		SalonID:       salonID,
		UserID:        userID,
		AppointmentID: id,
		TemplateID:    req.TemplateID,
		StartTime:     start,
	})
	if err != nil {
		writeUsecaseError(c, err)
		return
	}

	httpresp.OK(c, wire.AppointmentResponse{Appointment: ap.ToWire()})
}

// ======================================================
// HELPERS
// ======================================================

// parseWireSegments parses segment timestamps and derives the appointment
// window (earliest start, latest end) from them.
func parseWireSegments(in []wire.Segment) ([]models.AppointmentSegment, time.Time, time.Time, error) {
	var (
		segs  []models.AppointmentSegment
		start time.Time
		end   time.Time
	)
	for _, ws := range in {
		s, err := time.Parse(time.RFC3339, ws.StartTime)
		if err != nil {
			return nil, start, end, errors.New("segment start_time must be ISO 8601")
		}
		e, err := time.Parse(time.RFC3339, ws.EndTime)
		if err != nil {
			return nil, start, end, errors.New("segment end_time must be ISO 8601")
		}

		segs = append(segs, models.AppointmentSegment{
			ID:           ws.ID,
			SegmentType:  ws.SegmentType,
			Label:        ws.Label,
			StartTime:    s,
			EndTime:      e,
			SortOrder:    ws.SortOrder,
			ProductGrams: ws.ProductGrams,
			Notes:        derefString(ws.Notes),
		})

		if start.IsZero() || s.Before(start) {
			start = s
		}
		if end.IsZero() || e.After(end) {
			end = e
		}
	}
	return segs, start, end, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeUsecaseError maps use-case failures onto the HTTP error taxonomy.
func writeUsecaseError(c *gin.Context, err error) {
	var ve *ucAppointment.ValidationError
	if errors.As(err, &ve) {
		httperr.WriteValidation(c, ve.Errors)
		return
	}

	switch code := httperr.BusinessCode(err); {
	case code == "time_conflict":
		httperr.Conflict(c, code, "The slot overlaps an existing appointment.")
	case code == "outside_working_hours":
		httperr.BadRequest(c, code, "Outside the employee's working hours.")
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Not found.")
	case code != "":
		httperr.BadRequest(c, code, "Request rejected.")
	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
