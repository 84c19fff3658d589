// Package wire defines the REST representation of the scheduling entities and
// the lossless mapping to and from the domain model.
package wire

// Appointment is the transport shape: snake_case fields, ISO-8601 timestamps.
// Time lives only on segments; the write path guarantees at least one.
type Appointment struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	ClientName      string    `json:"client_name"`
	ServiceName     string    `json:"service_name"`
	ServiceCategory string    `json:"service_category"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	SalonID         string    `json:"salon_id,omitempty"`
	CustomerID      string    `json:"customer_id,omitempty"`
	Segments        []Segment `json:"segments"`
}

type Segment struct {
	ID           string   `json:"id"`
	SegmentType  string   `json:"segment_type"`
	Label        string   `json:"label"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	SortOrder    int      `json:"sort_order"`
	ProductGrams *float64 `json:"product_grams"`
	Notes        *string  `json:"notes"`
}

// Employee mirrors the staff directory record the server returns. The engine
// only ever reads it.
type Employee struct {
	ID        string `json:"id"`
	SalonID   string `json:"salon_id,omitempty"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Role      string `json:"role"`
	Color     string `json:"color"`
}

type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Description *string        `json:"description"`
	Steps       []TemplateStep `json:"steps"`
}

type TemplateStep struct {
	ID              string `json:"id"`
	StepType        string `json:"step_type"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"duration_minutes"`
	SortOrder       int    `json:"sort_order"`
	IsGap           bool   `json:"is_gap"`
}

// ===============================
// Envelopes
// ===============================

type AppointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

type TemplatesResponse struct {
	Templates []Template `json:"templates"`
}

// EmployeesResponse matches the server's list envelope for the staff
// directory endpoint.
type EmployeesResponse struct {
	Data  []Employee `json:"data"`
	Total int        `json:"total"`
}

type AppointmentResponse struct {
	Appointment Appointment `json:"appointment"`
}

type SplitRequest struct {
	Segments []Segment `json:"segments"`
}

type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id"`
	StartTime  string `json:"start_time"`
}
