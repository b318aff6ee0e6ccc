package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halalsenpai/electricwheels/models"
)

func sampleLead() models.Lead {
	return models.Lead{
		ID:          uuid.New(),
		Name:        "Ahmed Khan",
		Phone:       "+923001234567",
		ModelID:     "evee-c1",
		Message:     "Interested in a test ride",
		Location:    "Lahore, Punjab, Pakistan",
		SubmittedAt: time.Now().UTC(),
	}
}

func TestSendLead_MockModeWithoutAPIKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	client := NewResendClient()

	assert.NoError(t, client.SendLead(sampleLead()))
}

func TestSendLead_PostsToResend(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("RESEND_API_KEY", "test-key")
	t.Setenv("RESEND_FROM_EMAIL", "leads@example.com")
	t.Setenv("LEADS_TO_EMAIL", "sales@example.com")
	client := NewResendClient()
	client.baseURL = srv.URL

	lead := sampleLead()
	require.NoError(t, client.SendLead(lead))

	assert.Equal(t, "leads@example.com", captured["from"])
	assert.Equal(t, "sales@example.com", captured["to"])
	assert.Equal(t, "New lead: Ahmed Khan", captured["subject"])

	html, _ := captured["html"].(string)
	assert.Contains(t, html, lead.Phone)
	assert.Contains(t, html, lead.ModelID)
	assert.Contains(t, html, lead.Location)
}

func TestSendLead_APIFailureIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid recipient"}`))
	}))
	defer srv.Close()

	t.Setenv("RESEND_API_KEY", "test-key")
	client := NewResendClient()
	client.baseURL = srv.URL

	assert.Error(t, client.SendLead(sampleLead()))
}

func TestBuildLeadHTML_EscapesUserInput(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	client := NewResendClient()

	lead := sampleLead()
	lead.Message = `<script>alert("x")</script>`

	html := client.buildLeadHTML(lead)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
