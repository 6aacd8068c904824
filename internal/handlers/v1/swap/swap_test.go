package swap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

// mockSwapService mocks the swap service for every handler in this package.
type mockSwapService struct {
	mock.Mock
}

func (m *mockSwapService) List(ctx context.Context) ([]service.Swap, error) {
	args := m.Called(ctx)
	if swaps := args.Get(0); swaps != nil {
		return swaps.([]service.Swap), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapService) Add(ctx context.Context, create service.SwapCreate) (*service.Swap, error) {
	args := m.Called(ctx, create)
	if sw := args.Get(0); sw != nil {
		return sw.(*service.Swap), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapService) Update(ctx context.Context, sw service.Swap) (*service.Swap, error) {
	args := m.Called(ctx, sw)
	if updated := args.Get(0); updated != nil {
		return updated.(*service.Swap), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSwapService) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newTestAPI registers every swap handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockSwapService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListSwapsHandler(svc).Register(api)
	NewCreateSwapHandler(svc).Register(api)
	NewUpdateSwapHandler(svc).Register(api)
	NewDeleteSwapHandler(svc).Register(api)
	return api
}

func makeServiceSwap() service.Swap {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return service.Swap{
		ID:                uuid.Must(uuid.NewV4()),
		PlatformAccountID: uuid.Must(uuid.NewV4()),
		Date:              date,
		FromAsset:         "BTC",
		FromAmount:        decimal.RequireFromString("0.5"),
		ToAsset:           "ETH",
		ToAmount:          decimal.RequireFromString("8.2"),
		FeeAmount:         null.From(decimal.RequireFromString("0.001")),
		FeeCurrency:       null.From("BTC"),
		CreatedAt:         service.Confirmed(date),
		UpdatedAt:         service.Confirmed(date),
	}
}

// -- List tests --

func TestHTTP_ListSwaps_Success(t *testing.T) {
	mockSvc := new(mockSwapService)
	sw := makeServiceSwap()
	mockSvc.On("List", mock.Anything).Return([]service.Swap{sw}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/swaps")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListSwapsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Swaps, 1)
	assert.Equal(t, "BTC", body.Swaps[0].FromAsset)
	assert.Equal(t, "0.001", body.Swaps[0].FeeAmount)
	mockSvc.AssertExpectations(t)
}

// -- Create tests --

func TestHTTP_CreateSwap_Success(t *testing.T) {
	mockSvc := new(mockSwapService)
	sw := makeServiceSwap()
	mockSvc.On("Add", mock.Anything, mock.MatchedBy(func(c service.SwapCreate) bool {
		return c.PlatformAccountID == sw.PlatformAccountID &&
			c.FromAsset == "BTC" &&
			c.ToAsset == "ETH" &&
			c.FeeAmount.GetOr(decimal.Zero).Equal(decimal.RequireFromString("0.001"))
	})).Return(&sw, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/swap", SwapBody{
		PlatformAccountID: sw.PlatformAccountID.String(),
		Date:              "2024-03-01T00:00:00Z",
		FromAsset:         "BTC",
		FromAmount:        "0.5",
		ToAsset:           "ETH",
		ToAmount:          "8.2",
		FeeAmount:         "0.001",
		FeeCurrency:       "BTC",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Swap
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, sw.ID.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateSwap_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockSwapService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/swap", SwapBody{
		PlatformAccountID: uuid.Must(uuid.NewV4()).String(),
		FromAsset:         "BTC",
		// FromAmount, ToAsset, ToAmount omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Add")
}

func TestHTTP_CreateSwap_InvalidFeeAmount(t *testing.T) {
	mockSvc := new(mockSwapService)

	resp := newTestAPI(t, mockSvc).Post("/v1/swap", SwapBody{
		PlatformAccountID: uuid.Must(uuid.NewV4()).String(),
		FromAsset:         "BTC",
		FromAmount:        "0.5",
		ToAsset:           "ETH",
		ToAmount:          "8.2",
		FeeAmount:         "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Add")
}

func TestHTTP_CreateSwap_ServiceError(t *testing.T) {
	mockSvc := new(mockSwapService)
	mockSvc.On("Add", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/v1/swap", SwapBody{
		PlatformAccountID: uuid.Must(uuid.NewV4()).String(),
		FromAsset:         "BTC",
		FromAmount:        "0.5",
		ToAsset:           "ETH",
		ToAmount:          "8.2",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- Update tests --

func TestHTTP_UpdateSwap_Success(t *testing.T) {
	mockSvc := new(mockSwapService)
	sw := makeServiceSwap()
	mockSvc.On("Update", mock.Anything, mock.MatchedBy(func(updated service.Swap) bool {
		return updated.ID == sw.ID && updated.ToAmount.Equal(decimal.RequireFromString("9.0"))
	})).Return(&sw, nil)

	resp := newTestAPI(t, mockSvc).Put("/v1/swap/"+sw.ID.String(), SwapBody{
		PlatformAccountID: sw.PlatformAccountID.String(),
		FromAsset:         "BTC",
		FromAmount:        "0.5",
		ToAsset:           "ETH",
		ToAmount:          "9.0",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

// -- Delete tests --

func TestHTTP_DeleteSwap_Success(t *testing.T) {
	mockSvc := new(mockSwapService)
	id := uuid.Must(uuid.NewV4())
	mockSvc.On("Remove", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/v1/swap/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
