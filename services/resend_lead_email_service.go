package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/halalsenpai/electricwheels/models"
)

// ResendClient forwards captured leads to the sales inbox via the Resend
// API. Without an API key it runs in mock mode: the lead is logged and
// reported as delivered, mirroring the dev setup.
type ResendClient struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	http    *http.Client
}

// NewResendClient builds the client from environment configuration.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, leads will be logged instead of emailed")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "leads@electricwheels.pk"
	}
	to := os.Getenv("LEADS_TO_EMAIL")
	if to == "" {
		to = "sales@electricwheels.pk"
	}

	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: "https://api.resend.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SendLead submits one normalized lead. No retry: a failure is reported to
// the caller exactly once and the lead is not queued anywhere.
func (r *ResendClient) SendLead(lead models.Lead) error {
	if r.apiKey == "" {
		log.Printf("[lead] %s %s (model=%s location=%s)", lead.Name, lead.Phone, lead.ModelID, lead.Location)
		return nil
	}

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.to,
		"subject": fmt.Sprintf("New lead: %s", lead.Name),
		"html":    r.buildLeadHTML(lead),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", r.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	return nil
}

func (r *ResendClient) buildLeadHTML(lead models.Lead) string {
	row := func(label, value string) string {
		if value == "" {
			return ""
		}
		return fmt.Sprintf(
			`<tr><td style="padding:4px 12px 4px 0;color:#666;">%s</td><td style="padding:4px 0;">%s</td></tr>`,
			label, html.EscapeString(value),
		)
	}

	return fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:560px;">
			<h2 style="color:#16a34a;">New bike lead</h2>
			<table style="border-collapse:collapse;font-size:14px;">
				%s%s%s%s%s%s%s
			</table>
			<p style="color:#999;font-size:12px;">Lead %s, submitted %s</p>
		</div>`,
		row("Name", lead.Name),
		row("Phone", lead.Phone),
		row("Model", lead.ModelID),
		row("Message", lead.Message),
		row("Location", lead.Location),
		row("Referrer", lead.Referrer),
		row("User agent", lead.UserAgent),
		lead.ID.String(),
		lead.SubmittedAt.Format(time.RFC3339),
	)
}
