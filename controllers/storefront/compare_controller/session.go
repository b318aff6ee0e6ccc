package compare_controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/halalsenpai/electricwheels/compare"
	"github.com/halalsenpai/electricwheels/models"
)

const sessionCookie = "cmp_session"

// Sessions is the process-wide comparison session store. Every handler in
// this package resolves the caller's set through it, so all pages of one
// visitor observe the same state.
var Sessions = compare.NewStore()

// sessionSet resolves the caller's comparison set. Session identity comes
// from the X-Session-ID header (SPA clients) or the cmp_session cookie;
// first-time visitors get a fresh uuid cookie.
func sessionSet(c *gin.Context) *compare.Set {
	id := c.GetHeader("X-Session-ID")
	if id == "" {
		if cookie, err := c.Cookie(sessionCookie); err == nil {
			id = cookie
		}
	}
	if id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, int(compare.TTL.Seconds()), "/", "", false, true)
	}
	return Sessions.Get(id)
}

// compareState is the payload every compare endpoint returns.
type compareState struct {
	Items      []models.Bike `json:"items"`
	Size       int           `json:"size"`
	CanAddMore bool          `json:"canAddMore"`
}

func stateOf(set *compare.Set) compareState {
	items := set.Items()
	return compareState{
		Items:      items,
		Size:       len(items),
		CanAddMore: set.CanAddMore(),
	}
}
