package preference

import (
	"time"
)

// Preference holds a user's display settings: the preferred display
// currency for aggregated views and the named category groups used by
// breakdowns. One row per user.
type Preference struct {
	UserID          string
	DisplayCurrency string
	// Groups maps a group name to the category identifiers it covers.
	Groups    map[string][]string
	UpdatedAt time.Time
}

const table = "preferences"
