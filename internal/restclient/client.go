// Package restclient implements the scheduler's Client port against the
// salon API.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glowdesk/salon-scheduler/internal/wire"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ===============================
// scheduler.Client
// ===============================

func (c *Client) GetAppointments(ctx context.Context) ([]wire.Appointment, error) {
	var resp wire.AppointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/appointments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

func (c *Client) GetTemplates(ctx context.Context) ([]wire.Template, error) {
	var resp wire.TemplatesResponse
	if err := c.do(ctx, http.MethodGet, "/api/templates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

func (c *Client) GetEmployees(ctx context.Context) ([]wire.Employee, error) {
	var resp wire.EmployeesResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateAppointment(ctx context.Context, ap wire.Appointment) (wire.Appointment, error) {
	var resp wire.AppointmentResponse
	if err := c.do(ctx, http.MethodPost, "/api/appointments", ap, &resp); err != nil {
		return wire.Appointment{}, err
	}
	return resp.Appointment, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id string, ap wire.Appointment) error {
	return c.do(ctx, http.MethodPut, "/api/appointments/"+id, ap, nil)
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/appointments/"+id, nil, nil)
}

func (c *Client) SplitAppointment(ctx context.Context, id string, segments []wire.Segment) error {
	return c.do(ctx, http.MethodPost, "/api/appointments/"+id+"/split", wire.SplitRequest{Segments: segments}, nil)
}

func (c *Client) ApplyTemplate(ctx context.Context, appointmentID, templateID string, startTime time.Time) error {
	req := wire.ApplyTemplateRequest{
		TemplateID: templateID,
		StartTime:  startTime.Format(time.RFC3339),
	}
	return c.do(ctx, http.MethodPost, "/api/appointments/"+appointmentID+"/apply-template", req, nil)
}

// ===============================
// Plumbing
// ===============================

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("restclient: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("restclient: %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restclient: decode %s %s: %w", method, path, err)
	}
	return nil
}
