package models

import (
	"time"

	"github.com/google/uuid"
)

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// LeadRequest is the raw lead form payload as posted by the frontend.
type LeadRequest struct {
	Name    string `json:"name" example:"Ahmed Khan"`
	Phone   string `json:"phone" example:"03001234567"`
	ModelID string `json:"modelId,omitempty" example:"evee-c1"`
	Message string `json:"message,omitempty"`
	Locale  string `json:"locale,omitempty" example:"en"`
}

// FieldErrors maps a form field name to a human-readable validation error.
type FieldErrors map[string]string

// ═══════════════════════════════════════════════════════════
// Normalized Lead
// ═══════════════════════════════════════════════════════════

// Lead is a validated, normalized lead ready for the submission sink.
// Phone is always in canonical +92XXXXXXXXXX form. The record is handed off
// once and never stored by this service.
type Lead struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	ModelID     string    `json:"modelId,omitempty"`
	Message     string    `json:"message,omitempty"`
	Locale      string    `json:"locale,omitempty"`
	Location    string    `json:"location"`
	ClientIP    string    `json:"clientIp,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}
