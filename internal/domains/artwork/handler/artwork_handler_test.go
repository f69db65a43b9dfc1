package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artworks-backend/internal/domains/artwork/model"
)

// fakeService serves canned outcomes and records the raw inputs the
// handler forwarded.
type fakeService struct {
	outcome *model.SearchOutcome
	rows    []model.Artwork
	artwork *model.Artwork
	zoom    *model.ZoomResponse
	err     error

	lastType  string
	lastQuery string
	lastHue   string
	lastMin   string
	lastID    int
	calls     int
}

func (f *fakeService) Search(ctx context.Context, rawType, rawQuery string) (*model.SearchOutcome, error) {
	f.calls++
	f.lastType = rawType
	f.lastQuery = rawQuery
	return f.outcome, f.err
}

func (f *fakeService) SearchByColor(ctx context.Context, rawHue string) (*model.SearchOutcome, error) {
	f.calls++
	f.lastHue = rawHue
	return f.outcome, f.err
}

func (f *fakeService) SearchBySubject(ctx context.Context, query string) ([]model.Artwork, error) {
	f.calls++
	f.lastQuery = query
	return f.rows, f.err
}

func (f *fakeService) SearchByWeight(ctx context.Context, rawMin string) ([]model.Artwork, error) {
	f.calls++
	f.lastMin = rawMin
	return f.rows, f.err
}

func (f *fakeService) ListFavorites(ctx context.Context) ([]model.Artwork, error) {
	f.calls++
	return f.rows, f.err
}

func (f *fakeService) GetArtwork(ctx context.Context, id int) (*model.Artwork, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.artwork, nil
}

func (f *fakeService) GetZoom(ctx context.Context, id int) (*model.ZoomResponse, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.zoom, nil
}

func (f *fakeService) ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.artwork, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int `json:"total"`
	} `json:"meta"`
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtworkHandler(svc)

	r := gin.New()
	artworks := r.Group("/api/v1/artworks")
	{
		artworks.GET("", h.Search)
		artworks.GET("/favorites", h.ListFavorites)
		artworks.GET("/subject", h.SearchBySubject)
		artworks.GET("/weight", h.SearchByWeight)
		artworks.GET("/color", h.ColorSearch)
		artworks.GET("/:id", h.GetDetail)
		artworks.GET("/:id/zoom", h.GetZoom)
		artworks.POST("/:id/favorite", h.ToggleFavorite)
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSearch_ForwardsFacetAndQuery(t *testing.T) {
	svc := &fakeService{outcome: model.NewResults([]model.Artwork{{ID: 1}, {ID: 2}})}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks?searchType=artist&search=monet")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "artist", svc.lastType)
	assert.Equal(t, "monet", svc.lastQuery)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Total)
}

func TestSearch_NoQueryRendersEmptySuccess(t *testing.T) {
	svc := &fakeService{outcome: model.NewNoQuery()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestSearch_InvalidInputRenders400(t *testing.T) {
	svc := &fakeService{outcome: model.NewInvalidInput()}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks?searchType=color&search=bluish")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.ErrCodeInvalidFacet, env.Error.Code)
}

func TestColorSearch_DefaultsHue(t *testing.T) {
	svc := &fakeService{outcome: model.NewResults(nil)}
	r := setupRouter(svc)

	w, _ := doRequest(t, r, http.MethodGet, "/api/v1/artworks/color")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "200", svc.lastHue)
}

func TestColorSearch_PassesExplicitHue(t *testing.T) {
	svc := &fakeService{outcome: model.NewResults(nil)}
	r := setupRouter(svc)

	doRequest(t, r, http.MethodGet, "/api/v1/artworks/color?q=17.5")
	assert.Equal(t, "17.5", svc.lastHue)
}

func TestSearchByWeight_ForwardsMin(t *testing.T) {
	svc := &fakeService{rows: []model.Artwork{{ID: 3}}}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks/weight?min=1500")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1500", svc.lastMin)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)
}

func TestListFavorites(t *testing.T) {
	svc := &fakeService{rows: []model.Artwork{{ID: 1, Favorite: true}}}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks/favorites")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)
}

func TestGetDetail_NotFoundMapsTo404(t *testing.T) {
	svc := &fakeService{err: model.ErrArtworkNotFound}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks/999")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetDetail_BadIDRejectedBeforeService(t *testing.T) {
	svc := &fakeService{}
	r := setupRouter(svc)

	for _, raw := range []string{"abc", "0", "-5"} {
		w, _ := doRequest(t, r, http.MethodGet, "/api/v1/artworks/"+raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", raw)
	}
	assert.Zero(t, svc.calls)
}

func TestGetZoom(t *testing.T) {
	svc := &fakeService{zoom: &model.ZoomResponse{
		Identifier: "https://www.artic.edu/iiif/2/abc-123",
		ColorHSL:   "hsl(203 71% 40%)",
	}}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/artworks/7/zoom")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.lastID)

	var zoom model.ZoomResponse
	require.NoError(t, json.Unmarshal(env.Data, &zoom))
	assert.Equal(t, "https://www.artic.edu/iiif/2/abc-123", zoom.Identifier)
	assert.Equal(t, "hsl(203 71% 40%)", zoom.ColorHSL)
}

func TestToggleFavorite(t *testing.T) {
	svc := &fakeService{artwork: &model.Artwork{ID: 7, Favorite: true}}
	r := setupRouter(svc)

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/artworks/7/favorite")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.lastID)

	var artwork model.Artwork
	require.NoError(t, json.Unmarshal(env.Data, &artwork))
	assert.True(t, artwork.Favorite)
}

func TestToggleFavorite_NotFound(t *testing.T) {
	svc := &fakeService{err: model.ErrArtworkNotFound}
	r := setupRouter(svc)

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/artworks/999/favorite")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
