package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// UnknownLocation is the fallback when the lookup fails for any reason.
// Callers treat it as a plain string and carry on.
const UnknownLocation = "Unknown"

var locationHTTP = &http.Client{Timeout: 3 * time.Second}

// LookupLocation resolves a rough "City, Region, Country" string for the
// given IP via ipapi.co. Best effort only: network failures, bad payloads
// and rate limits all degrade to UnknownLocation.
func LookupLocation(ctx context.Context, ip string) string {
	base := os.Getenv("IPAPI_URL")
	if base == "" {
		base = "https://ipapi.co"
	}

	url := base + "/json/"
	if ip != "" {
		url = fmt.Sprintf("%s/%s/json/", base, ip)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return UnknownLocation
	}

	resp, err := locationHTTP.Do(req)
	if err != nil {
		return UnknownLocation
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UnknownLocation
	}

	var data struct {
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return UnknownLocation
	}
	if data.City == "" && data.Region == "" && data.Country == "" {
		return UnknownLocation
	}

	return fmt.Sprintf("%s, %s, %s", data.City, data.Region, data.Country)
}
