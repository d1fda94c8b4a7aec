package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/localeyes/internal/models"
)

// mockDetailService implements interfaces.DetailService for testing
type mockDetailService struct {
	describeFunc func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error)
}

func (m *mockDetailService) GenerateDetailedDescription(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
	if m.describeFunc != nil {
		return m.describeFunc(ctx, req)
	}
	return &models.DetailResponse{DetailedDescription: "A lovely spot."}, nil
}

func executeDescribeRequest(handler *DetailHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/locations/describe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.DescribeHandler(rec, req)
	return rec
}

func TestDescribeHandler_Success(t *testing.T) {
	service := &mockDetailService{
		describeFunc: func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
			return &models.DetailResponse{DetailedDescription: "Historic landmark on Liberty Island."}, nil
		},
	}
	handler := NewDetailHandler(service, nil)

	rec := executeDescribeRequest(handler, `{
		"locationName": "The Statue of Liberty",
		"locationType": "Landmark",
		"locationAddress": "New York, NY 10004, USA"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.DetailedDescription, "Liberty Island")
}

func TestDescribeHandler_FailureDegradesToApology(t *testing.T) {
	service := &mockDetailService{
		describeFunc: func(ctx context.Context, req models.DetailRequest) (*models.DetailResponse, error) {
			return nil, &models.BackendUnavailableError{Provider: "gemini", Err: errors.New("overloaded")}
		},
	}
	handler := NewDetailHandler(service, nil)

	rec := executeDescribeRequest(handler, `{
		"locationName": "Blue Bottle",
		"locationType": "Coffee Shop",
		"locationAddress": "1 Main St"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, "detail failures never blank the panel")

	var resp models.DetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, detailFallbackText, resp.DetailedDescription)
}

func TestDescribeHandler_RejectsIncompleteRequest(t *testing.T) {
	handler := NewDetailHandler(&mockDetailService{}, nil)

	rec := executeDescribeRequest(handler, `{"locationName": "Blue Bottle"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
