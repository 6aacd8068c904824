package preference

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Preference is the API model for a user's display settings.
type Preference struct {
	DisplayCurrency string              `json:"displayCurrency" doc:"Currency aggregated views convert into"`
	Groups          map[string][]string `json:"groups" doc:"Named category groups used by breakdowns"`
	UpdatedAt       string              `json:"updatedAt,omitempty" doc:"RFC 3339 last update time"`
}

func preferenceToAPI(pref service.Preference) Preference {
	out := Preference{
		DisplayCurrency: pref.DisplayCurrency,
		Groups:          pref.Groups,
	}
	if out.Groups == nil {
		out.Groups = map[string][]string{}
	}
	if !pref.UpdatedAt.Time.IsZero() {
		out.UpdatedAt = pref.UpdatedAt.Time.Format(time.RFC3339)
	}
	return out
}
