package filter_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	filter_cache "github.com/halalsenpai/electricwheels/cache"
	"github.com/halalsenpai/electricwheels/catalog"
	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/search"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns every facet's options with live model counts for the storefront filter sidebar.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	bikes := catalog.Get().Bikes()
	metadata := &models.FilterMetadata{}

	// Build the option groups concurrently; each goroutine owns its fields.
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.Brands = brandOptions(bikes)
		metadata.BatteryTypes = batteryTypeOptions(bikes)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.PriceRanges = bucketOptions(search.PriceBuckets, bikes, func(b models.Bike) (float64, bool) {
			return float64(b.Price.MSRP), true
		})
		metadata.Ranges = bucketOptions(search.RangeBuckets, bikes, func(b models.Bike) (float64, bool) {
			return float64(b.Specs.RangeKm), b.Specs.RangeKm > 0
		})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata.MotorPower = bucketOptions(search.MotorPowerBuckets, bikes, func(b models.Bike) (float64, bool) {
			return float64(b.Specs.MotorPowerW), true
		})
		metadata.TopSpeed = bucketOptions(search.TopSpeedBuckets, bikes, func(b models.Bike) (float64, bool) {
			return float64(b.Specs.TopSpeedKmh), true
		})
		metadata.Weight = bucketOptions(search.WeightBuckets, bikes, func(b models.Bike) (float64, bool) {
			if b.Specs.WeightKg == nil {
				return 0, false
			}
			return *b.Specs.WeightKg, true
		})
		metadata.Brakes = brakeOptions(bikes)
	}()

	wg.Wait()

	filter_cache.SetMetadata(metadata)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// brandOptions lists distinct brands in catalog order with model counts.
func brandOptions(bikes []models.Bike) []models.FilterOption {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, b := range bikes {
		if _, seen := counts[b.Brand]; !seen {
			order = append(order, b.Brand)
		}
		counts[b.Brand]++
	}

	out := make([]models.FilterOption, 0, len(order))
	for _, brand := range order {
		out = append(out, models.FilterOption{Value: brand, Label: brand, Count: counts[brand]})
	}
	return out
}

// batteryTypeOptions lists distinct battery chemistries; bikes without a
// published battery type contribute nothing.
func batteryTypeOptions(bikes []models.Bike) []models.FilterOption {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, b := range bikes {
		t := b.Specs.BatteryType
		if t == "" {
			continue
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	out := make([]models.FilterOption, 0, len(order))
	for _, t := range order {
		out = append(out, models.FilterOption{Value: t, Label: t, Count: counts[t]})
	}
	return out
}

// bucketOptions counts catalog models per bucket. value reports the bike's
// field and whether it is present; absent fields are not counted anywhere.
func bucketOptions(table []search.Bucket, bikes []models.Bike, value func(models.Bike) (float64, bool)) []models.FilterOption {
	out := make([]models.FilterOption, 0, len(table))
	for _, bucket := range table {
		count := 0
		for _, b := range bikes {
			if v, ok := value(b); ok && bucket.Contains(v) {
				count++
			}
		}
		out = append(out, models.FilterOption{Value: bucket.Value, Label: bucket.Label, Count: count})
	}
	return out
}

func brakeOptions(bikes []models.Bike) []models.FilterOption {
	out := make([]models.FilterOption, 0, len(search.BrakeOptions))
	for _, opt := range search.BrakeOptions {
		count := 0
		for _, b := range bikes {
			if b.Specs.Brakes == opt.Spec {
				count++
			}
		}
		out = append(out, models.FilterOption{Value: opt.Value, Label: opt.Label, Count: count})
	}
	return out
}
