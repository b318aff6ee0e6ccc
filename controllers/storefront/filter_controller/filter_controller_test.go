package filter_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filter_cache "github.com/halalsenpai/electricwheels/cache"
	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	filter_cache.Invalidate()
	r := gin.New()
	r.GET("/store/filters/metadata", GetFilterMetadata)
	return r
}

func getMetadata(t *testing.T, r *gin.Engine) models.FilterMetadata {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/store/filters/metadata", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.FilterMetadata `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestGetFilterMetadata_AllGroupsPresent(t *testing.T) {
	r := setupRouter()
	meta := getMetadata(t, r)

	assert.NotEmpty(t, meta.Brands)
	assert.NotEmpty(t, meta.PriceRanges)
	assert.NotEmpty(t, meta.Ranges)
	assert.NotEmpty(t, meta.BatteryTypes)
	assert.NotEmpty(t, meta.MotorPower)
	assert.NotEmpty(t, meta.TopSpeed)
	assert.NotEmpty(t, meta.Weight)
	assert.Len(t, meta.Brakes, 2)
}

func TestGetFilterMetadata_BrandCountsSumToCatalog(t *testing.T) {
	r := setupRouter()
	meta := getMetadata(t, r)

	total := 0
	for _, opt := range meta.Brands {
		assert.Positive(t, opt.Count, "brand %q has no models", opt.Value)
		total += opt.Count
	}
	assert.Equal(t, catalog.Get().Len(), total)
}

func TestGetFilterMetadata_PriceCountsSumToCatalog(t *testing.T) {
	r := setupRouter()
	meta := getMetadata(t, r)

	// Every bike has a price, so price bucket counts partition the catalog.
	total := 0
	for _, opt := range meta.PriceRanges {
		total += opt.Count
	}
	assert.Equal(t, catalog.Get().Len(), total)
}

func TestGetFilterMetadata_MissingFieldsNotCounted(t *testing.T) {
	r := setupRouter()
	meta := getMetadata(t, r)

	// The fixtures include bikes with no published weight or battery type;
	// those bikes must be absent from the respective counts.
	weightTotal := 0
	for _, opt := range meta.Weight {
		weightTotal += opt.Count
	}
	assert.Less(t, weightTotal, catalog.Get().Len())

	batteryTotal := 0
	for _, opt := range meta.BatteryTypes {
		batteryTotal += opt.Count
	}
	assert.Less(t, batteryTotal, catalog.Get().Len())
}

func TestGetFilterMetadata_ServedFromCache(t *testing.T) {
	r := setupRouter()

	first := getMetadata(t, r)

	// A second request hits the cache and returns identical metadata.
	second := getMetadata(t, r)
	assert.Equal(t, first, second)

	cached, ok := filter_cache.GetMetadata()
	require.True(t, ok, "metadata should be cached after first request")
	assert.Equal(t, first, *cached)
}
