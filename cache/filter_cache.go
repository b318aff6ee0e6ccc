package filter_cache

import (
	"sync"
	"time"

	"github.com/halalsenpai/electricwheels/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// The facet option counts are recomputed over the whole catalog; cheap, but
// requested on every storefront page, so one entry with a short TTL.

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metadataEntry
)

func GetMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return nil, false
}

func SetMetadata(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached entry (used by the seed tool and tests).
func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
