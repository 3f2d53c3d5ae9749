package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prajwalng2/Major-Project-temp/models"
)

// stubCatalog serves a fixed catalog so handlers can be exercised without
// Mongo or Redis.
type stubCatalog struct {
	schemes []models.Scheme
	err     error
}

func (s *stubCatalog) All(ctx context.Context) ([]models.Scheme, error) {
	return s.schemes, s.err
}

func (s *stubCatalog) ByID(ctx context.Context, id string) (*models.Scheme, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.schemes {
		if s.schemes[i].ID == id {
			return &s.schemes[i], nil
		}
	}
	return nil, nil
}

func (s *stubCatalog) ByCategory(ctx context.Context, category string) ([]models.Scheme, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Scheme
	for _, scheme := range s.schemes {
		if strings.EqualFold(scheme.Category, category) {
			out = append(out, scheme)
		}
	}
	return out, nil
}

func (s *stubCatalog) Featured(ctx context.Context) ([]models.Scheme, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Scheme
	for _, scheme := range s.schemes {
		if scheme.IsPopular {
			out = append(out, scheme)
		}
	}
	return out, nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{schemes: []models.Scheme{
		{
			ID:         "farm-support",
			Title:      "Farmer Income Support",
			Category:   "Agriculture & Farming",
			Ministry:   "Ministry of Agriculture",
			State:      "All States",
			Deadline:   "Ongoing",
			LaunchDate: "February 24, 2019",
			IsPopular:  true,
			Tags:       []string{"farmers"},
		},
		{
			ID:         "crop-insurance",
			Title:      "Crop Insurance for Farmers",
			Category:   "Agriculture & Farming",
			Ministry:   "Ministry of Agriculture",
			State:      "All States",
			Deadline:   "Seasonal",
			LaunchDate: "January 13, 2016",
			Tags:       []string{"farmers", "insurance"},
		},
		{
			ID:       "state-pension",
			Title:    "State Pension Plan",
			Category: "Social Welfare",
			Ministry: "State Government",
			State:    "Karnataka",
			Deadline: "Closed",
		},
	}}
}

func newSchemeRouter(catalog *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSchemeRoutes(router, catalog)
	SetupSearchRoutes(router, catalog, nil)
	SetupMatcherRoutes(router, catalog, nil)
	SetupAssistantRoutes(router, nil, catalog)
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type schemeListResponse struct {
	Schemes []models.Scheme `json:"schemes"`
	Total   int             `json:"total"`
}

func TestListSchemesPopularFirst(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp schemeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "farm-support", resp.Schemes[0].ID)
}

func TestListSchemesFilters(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes?category=agriculture", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp schemeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)

	recorder = doRequest(router, http.MethodGet, "/schemes?state=karnataka&active=false", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "state-pension", resp.Schemes[0].ID)
}

func TestListSchemesSortAndLimit(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes?sort=newest&limit=1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp schemeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "farm-support", resp.Schemes[0].ID)
}

func TestGetSchemeNotFound(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes/no-such-scheme", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["error_code"])
}

func TestGetSchemeByID(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes/crop-insurance", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var scheme models.Scheme
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &scheme))
	assert.Equal(t, "Crop Insurance for Farmers", scheme.Title)
}

func TestFeaturedSchemes(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes/featured", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp schemeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "farm-support", resp.Schemes[0].ID)
}

func TestSchemeCategories(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes/categories", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Categories []struct {
			Category string `json:"category"`
			Count    int    `json:"count"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "Agriculture & Farming", resp.Categories[0].Category)
	assert.Equal(t, 2, resp.Categories[0].Count)
	assert.Equal(t, "Social Welfare", resp.Categories[1].Category)
}

func TestRelatedSchemes(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/schemes/farm-support/related", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp schemeListResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Schemes)
	assert.Equal(t, "crop-insurance", resp.Schemes[0].ID)
	for _, s := range resp.Schemes {
		assert.NotEqual(t, "farm-support", s.ID)
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodGet, "/search?q=crop+insurance", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Query   string          `json:"query"`
		Schemes []models.Scheme `json:"schemes"`
		Total   int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "crop insurance", resp.Query)
	require.NotZero(t, resp.Total)
	assert.Equal(t, "crop-insurance", resp.Schemes[0].ID)
}

func TestSearchCatalogUnavailable(t *testing.T) {
	router := newSchemeRouter(&stubCatalog{err: context.DeadlineExceeded})

	recorder := doRequest(router, http.MethodGet, "/search?q=anything", nil)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

type matchResponse struct {
	Matches []models.MatchedScheme `json:"matches"`
	Total   int                    `json:"total"`
}

func TestMatchRanksProfile(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	age := 30
	body := MatchRequest{Profile: models.UserProfile{
		Age:        &age,
		Occupation: "farmer",
		Category:   []string{"Agriculture & Farming"},
	}}

	recorder := doRequest(router, http.MethodPost, "/matcher/match", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp matchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "Agriculture & Farming", resp.Matches[0].Scheme.Category)
	assert.Greater(t, resp.Matches[0].Score, resp.Matches[2].Score)
}

func TestMatchDegenerateProfileScoresZero(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodPost, "/matcher/match", MatchRequest{})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp matchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	for _, m := range resp.Matches {
		assert.Zero(t, m.Score, "scheme %s", m.Scheme.ID)
	}
}

func TestMatchCategoryAndActiveFilters(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	body := MatchRequest{
		Profile:    models.UserProfile{Category: []string{"Social Welfare"}},
		Category:   "Social Welfare",
		ActiveOnly: true,
	}

	recorder := doRequest(router, http.MethodPost, "/matcher/match", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp matchResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	// The only Social Welfare scheme is closed.
	assert.Zero(t, resp.Total)
}

func TestMatchRejectsMalformedBody(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	req := httptest.NewRequest(http.MethodPost, "/matcher/match", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAssistantUnavailableWithoutClient(t *testing.T) {
	router := newSchemeRouter(testCatalog())

	recorder := doRequest(router, http.MethodPost, "/assistant/ask", AskRequest{Question: "Which schemes help farmers?"})
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
