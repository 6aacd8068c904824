package preference

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetPreferencesInput is the Huma input for reading preferences.
type GetPreferencesInput struct{}

// GetPreferencesOutput is the Huma output for reading preferences.
type GetPreferencesOutput struct {
	Body Preference
}

// preferenceGetter is the interface for reading preferences.
type preferenceGetter interface {
	Get(ctx context.Context) (*service.Preference, error)
}

// GetPreferencesHandler handles GET /v1/preferences.
type GetPreferencesHandler struct {
	PreferenceService preferenceGetter
}

// NewGetPreferencesHandler creates a new GetPreferencesHandler.
func NewGetPreferencesHandler(svc preferenceGetter) *GetPreferencesHandler {
	return &GetPreferencesHandler{PreferenceService: svc}
}

// Register registers the get preferences endpoint with the Huma API.
func (h *GetPreferencesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-preferences",
		Method:      http.MethodGet,
		Path:        "/v1/preferences",
		Summary:     "Get display preferences",
		Description: "Returns the user's display currency and category groups, with defaults for users who never saved any.",
		Tags:        []string{"Preferences"},
	}, h.handle)
}

func (h *GetPreferencesHandler) handle(ctx context.Context, _ *GetPreferencesInput) (*GetPreferencesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getPreferencesMs")
	}
	pref, err := h.PreferenceService.Get(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.Map("failed to get preferences", err)
	}

	return &GetPreferencesOutput{Body: preferenceToAPI(*pref)}, nil
}
