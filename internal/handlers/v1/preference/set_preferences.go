package preference

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// SetPreferencesBody is the request body for saving preferences.
type SetPreferencesBody struct {
	DisplayCurrency string              `json:"displayCurrency" minLength:"1" doc:"Currency aggregated views convert into"`
	Groups          map[string][]string `json:"groups,omitempty" doc:"Named category groups used by breakdowns"`
}

// SetPreferencesInput is the Huma input for saving preferences.
type SetPreferencesInput struct {
	Body SetPreferencesBody
}

// SetPreferencesOutput is the Huma output for saving preferences.
type SetPreferencesOutput struct {
	Body Preference
}

// preferenceSetter is the interface for saving preferences.
type preferenceSetter interface {
	Set(ctx context.Context, pref service.Preference) (*service.Preference, error)
}

// SetPreferencesHandler handles PUT /v1/preferences.
type SetPreferencesHandler struct {
	PreferenceService preferenceSetter
}

// NewSetPreferencesHandler creates a new SetPreferencesHandler.
func NewSetPreferencesHandler(svc preferenceSetter) *SetPreferencesHandler {
	return &SetPreferencesHandler{PreferenceService: svc}
}

// Register registers the set preferences endpoint with the Huma API.
func (h *SetPreferencesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-preferences",
		Method:      http.MethodPut,
		Path:        "/v1/preferences",
		Summary:     "Save display preferences",
		Description: "Re-states the user's display currency and category groups. Last write wins across sessions.",
		Tags:        []string{"Preferences"},
	}, h.handle)
}

func (h *SetPreferencesHandler) handle(ctx context.Context, input *SetPreferencesInput) (*SetPreferencesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("setPreferencesMs")
	}
	pref, err := h.PreferenceService.Set(ctx, service.Preference{
		DisplayCurrency: input.Body.DisplayCurrency,
		Groups:          input.Body.Groups,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to save preferences", err)
	}

	return &SetPreferencesOutput{Body: preferenceToAPI(*pref)}, nil
}
