package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryplate/backend/internal/service"
)

// mockCaptioner stands in for the caption service.
type mockCaptioner struct {
	caption string
	err     error
}

func (m *mockCaptioner) Caption(ctx context.Context, imageBase64 string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.caption, nil
}

func setupIngredientRouter(t *testing.T, captioner service.Captioner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	router := gin.New()
	handler := NewIngredientHandler(captioner, log)
	handler.RegisterRoutes(router.Group("/api"), nil)
	return router
}

func postExtract(t *testing.T, router *gin.Engine, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/ingredients/extract", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExtractFromCaption(t *testing.T) {
	router := setupIngredientRouter(t, &mockCaptioner{})

	w := postExtract(t, router, map[string]string{"caption": "fresh sweet potato and rice"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Rice", "Sweet Potato"}, resp.Ingredients)
}

func TestExtractFromImageUsesCaptionService(t *testing.T) {
	router := setupIngredientRouter(t, &mockCaptioner{caption: "a bowl of rice with broccoli"})

	w := postExtract(t, router, map[string]string{"image": "aW1hZ2U="})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a bowl of rice with broccoli", resp.Caption)
	assert.Equal(t, []string{"Broccoli", "Rice"}, resp.Ingredients)
}

func TestExtractNoIngredientsIsNotAnError(t *testing.T) {
	router := setupIngredientRouter(t, &mockCaptioner{caption: "an empty table"})

	w := postExtract(t, router, map[string]string{"image": "aW1hZ2U="})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Ingredients)
}

func TestExtractRequiresInput(t *testing.T) {
	router := setupIngredientRouter(t, &mockCaptioner{})

	w := postExtract(t, router, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractCaptionErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"auth", service.ErrInvalidCredentials, http.StatusBadGateway, "Invalid API key"},
		{"timeout", service.ErrCaptionTimeout, http.StatusGatewayTimeout, "timed out"},
		{"network", service.ErrCaptionNetwork, http.StatusBadGateway, "Network error"},
		{"upstream", &service.UpstreamError{StatusCode: 503, Message: "model is loading"}, http.StatusBadGateway, "model is loading"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupIngredientRouter(t, &mockCaptioner{err: tc.err})

			w := postExtract(t, router, map[string]string{"image": "aW1hZ2U="})
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}
