package addresslookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/web"
	"therapy-paws/internal/models"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Autocomplete(ctx context.Context, query, country string) ([]models.AddressSuggestion, error) {
	args := m.Called(ctx, query, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AddressSuggestion), args.Error(1)
}

func (m *MockResolver) Details(ctx context.Context, placeID string) (*models.StructuredAddress, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StructuredAddress), args.Error(1)
}

func TestService_Autocomplete(t *testing.T) {
	suggestions := []models.AddressSuggestion{
		{PlaceID: "place-1", Description: "12 Oak Street, Springfield"},
	}

	tests := []struct {
		name        string
		query       string
		setupMock   func(resolver *MockResolver)
		wantCount   int
		wantNoCall  bool
	}{
		{
			name:  "matches returned",
			query: "12 Oak",
			setupMock: func(resolver *MockResolver) {
				resolver.On("Autocomplete", mock.Anything, "12 Oak", "").Return(suggestions, nil)
			},
			wantCount: 1,
		},
		{
			name:       "query below minimum length",
			query:      "12",
			wantNoCall: true,
		},
		{
			name:       "whitespace query below minimum length",
			query:      "  a  ",
			wantNoCall: true,
		},
		{
			name:  "provider failure degrades to empty",
			query: "12 Oak",
			setupMock: func(resolver *MockResolver) {
				resolver.On("Autocomplete", mock.Anything, "12 Oak", "").
					Return(nil, fmt.Errorf("OVER_QUERY_LIMIT"))
			},
			wantCount: 0,
		},
		{
			name:  "nil provider result normalized",
			query: "12 Oak",
			setupMock: func(resolver *MockResolver) {
				resolver.On("Autocomplete", mock.Anything, "12 Oak", "").
					Return([]models.AddressSuggestion(nil), nil)
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(MockResolver)
			if tt.setupMock != nil {
				tt.setupMock(resolver)
			}

			service := NewService(resolver, logger.NewNoOpLogger())
			output := service.Autocomplete(context.Background(), tt.query, "")

			require.NotNil(t, output)
			assert.NotNil(t, output.Suggestions)
			assert.Len(t, output.Suggestions, tt.wantCount)
			if tt.wantNoCall {
				resolver.AssertNotCalled(t, "Autocomplete", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestService_Details(t *testing.T) {
	lat, lng := 51.5, -0.12
	address := &models.StructuredAddress{
		StreetLine1: "12 Oak Street",
		City:        "Springfield",
		PostalCode:  "SP1 2AB",
		Country:     "GB",
		Lat:         &lat,
		Lng:         &lng,
		PlaceID:     "place-1",
	}

	resolver := new(MockResolver)
	resolver.On("Details", mock.Anything, "place-1").Return(address, nil)

	service := NewService(resolver, logger.NewNoOpLogger())
	output, err := service.Details(context.Background(), "place-1")

	require.NoError(t, err)
	assert.Equal(t, address, output.Address)
}

func TestService_Details_MissingPlaceID(t *testing.T) {
	service := NewService(new(MockResolver), logger.NewNoOpLogger())
	_, err := service.Details(context.Background(), "")

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestService_Details_ProviderFailure(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Details", mock.Anything, "place-1").Return(nil, fmt.Errorf("INVALID_REQUEST"))

	service := NewService(resolver, logger.NewNoOpLogger())
	_, err := service.Details(context.Background(), "place-1")

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeAddressLookupFailed, stdErr.Code)
}

func TestHandler_Autocomplete_DegradedStill200(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := new(MockResolver)
	resolver.On("Autocomplete", mock.Anything, "12 Oak", "gb").
		Return(nil, fmt.Errorf("provider down"))

	log := logger.NewNoOpLogger()
	handler := NewHandler(NewService(resolver, log), log)

	router := gin.New()
	router.GET(AutocompleteRoute, web.Wrap(log, handler.HandleAutocomplete))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, AutocompleteRoute+"?q=12+Oak&country=gb", nil)
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var output AutocompleteOutput
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &output))
	assert.NotNil(t, output.Suggestions)
	assert.Empty(t, output.Suggestions)
}

func TestHandler_Details_MissingPlaceIDIs400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logger.NewNoOpLogger()
	handler := NewHandler(NewService(new(MockResolver), log), log)

	router := gin.New()
	router.GET(DetailsRoute, web.Wrap(log, handler.HandleDetails))

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, DetailsRoute, nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
