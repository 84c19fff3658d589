package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glowdesk/salon-scheduler/internal/cache"
	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/models"
	ucAppointment "github.com/glowdesk/salon-scheduler/internal/usecase/appointment"
)

// activeStatuses are the states that occupy grid time. Cancelled and no-show
// rows stay in the table but never conflict.
var activeStatuses = []string{"confirmed", "in_progress", "completed"}

type AppointmentGormRepository struct {
	db    *gorm.DB
	cache *cache.ScheduleCache
}

func NewAppointmentGormRepository(db *gorm.DB, c *cache.ScheduleCache) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, cache: c}
}

// --------------------------------------------------
// Salon / staff
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetEmployee(
	ctx context.Context,
	salonID string,
	employeeID string,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", employeeID, salonID).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return err
	}
	r.cache.InvalidateSalon(ctx, ap.SalonID)
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	salonID string,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Segments").
		Where("id = ? AND salon_id = ?", appointmentID, salonID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(ap).Error; err != nil {
		return err
	}
	r.cache.InvalidateSalon(ctx, ap.SalonID)
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	salonID string,
	appointmentID string,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Where("id = ? AND salon_id = ?", appointmentID, salonID).
			First(&ap).Error; err != nil {
			return err
		}

		// Segments never outlive their appointment.
		if err := tx.Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentSegment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ap).Error; err != nil {
			return err
		}

		r.cache.InvalidateSalon(ctx, salonID)
		return nil
	})
}

func (r *AppointmentGormRepository) ReplaceSegments(
	ctx context.Context,
	ap *models.Appointment,
	segments []models.AppointmentSegment,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("appointment_id = ?", ap.ID).
			Delete(&models.AppointmentSegment{}).Error; err != nil {
			return err
		}

		for i := range segments {
			segments[i].AppointmentID = ap.ID
		}
		if len(segments) > 0 {
			if err := tx.Create(&segments).Error; err != nil {
				return err
			}
		}

		ap.Segments = segments
		ap.SyncFromSegments()

		return tx.Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Updates(map[string]any{
				"start_time": ap.StartTime,
				"end_time":   ap.EndTime,
			}).Error
	})
	if err != nil {
		return err
	}

	r.cache.InvalidateSalon(ctx, ap.SalonID)
	return nil
}

func (r *AppointmentGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	employeeID string,
	start time.Time,
	end time.Time,
	excludeID string,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"employee_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			employeeID, activeStatuses, end, start,
		)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	salonID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Segments").
		Where("salon_id = ?", salonID).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	salonID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	if aps, ok := r.cache.GetDay(ctx, salonID, dayStart); ok {
		return aps, nil
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Segments").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	r.cache.SetDay(ctx, salonID, dayStart, aps)
	return aps, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) IsWithinWorkingHours(
	ctx context.Context,
	employeeID string,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())
	loc := start.Location()

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND weekday = ?", employeeID, weekday).
		First(&wh).Error; err != nil {
		return false, nil
	}

	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	workStart := parseHM(wh.StartTime)
	workEnd := parseHM(wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false, nil
	}

	if wh.BreakStart != "" && wh.BreakEnd != "" {
		breakStart := parseHM(wh.BreakStart)
		breakEnd := parseHM(wh.BreakEnd)
		if start.Before(breakEnd) && end.After(breakStart) {
			return false, nil
		}
	}

	return true, nil
}

// --------------------------------------------------
// Templates
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTemplate(
	ctx context.Context,
	salonID string,
	templateID string,
) (*models.SplitTemplate, error) {

	var tpl models.SplitTemplate
	if err := r.db.WithContext(ctx).
		Preload("Steps").
		Where("id = ? AND salon_id = ?", templateID, salonID).
		First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *AppointmentGormRepository) ListTemplates(
	ctx context.Context,
	salonID string,
) ([]models.SplitTemplate, error) {

	var tpls []models.SplitTemplate
	if err := r.db.WithContext(ctx).
		Preload("Steps").
		Where("salon_id = ?", salonID).
		Order("name ASC").
		Find(&tpls).Error; err != nil {
		return nil, err
	}
	return tpls, nil
}

// Compile-time check
var _ ucAppointment.Repository = (*AppointmentGormRepository)(nil)
