package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artworks-backend/internal/domains/artwork/model"
)

// fakeRepo records which facet query ran and with what argument, and
// serves canned rows.
type fakeRepo struct {
	calls []string

	rows      []model.Artwork
	artwork   *model.Artwork
	zoomInfo  *model.ZoomInfo
	err       error
	lastText  string
	lastYear  int
	lastHue   float64
	lastMin   float64
	toggledID int
}

func (f *fakeRepo) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*model.Artwork, error) {
	f.record("GetByID")
	if f.err != nil {
		return nil, f.err
	}
	return f.artwork, nil
}

func (f *fakeRepo) GetZoomInfo(ctx context.Context, id int) (*model.ZoomInfo, error) {
	f.record("GetZoomInfo")
	if f.err != nil {
		return nil, f.err
	}
	return f.zoomInfo, nil
}

func (f *fakeRepo) SearchAny(ctx context.Context, text string) ([]model.Artwork, error) {
	f.record("SearchAny")
	f.lastText = text
	return f.rows, f.err
}

func (f *fakeRepo) SearchByArtist(ctx context.Context, text string) ([]model.Artwork, error) {
	f.record("SearchByArtist")
	f.lastText = text
	return f.rows, f.err
}

func (f *fakeRepo) SearchByStyle(ctx context.Context, text string) ([]model.Artwork, error) {
	f.record("SearchByStyle")
	f.lastText = text
	return f.rows, f.err
}

func (f *fakeRepo) SearchByPlace(ctx context.Context, text string) ([]model.Artwork, error) {
	f.record("SearchByPlace")
	f.lastText = text
	return f.rows, f.err
}

func (f *fakeRepo) SearchBySubject(ctx context.Context, text string) ([]model.Artwork, error) {
	f.record("SearchBySubject")
	f.lastText = text
	return f.rows, f.err
}

func (f *fakeRepo) SearchByDateEnd(ctx context.Context, year int) ([]model.Artwork, error) {
	f.record("SearchByDateEnd")
	f.lastYear = year
	return f.rows, f.err
}

func (f *fakeRepo) SearchByColor(ctx context.Context, hue float64) ([]model.Artwork, error) {
	f.record("SearchByColor")
	f.lastHue = hue
	return f.rows, f.err
}

func (f *fakeRepo) SearchByWeight(ctx context.Context, min float64) ([]model.Artwork, error) {
	f.record("SearchByWeight")
	f.lastMin = min
	return f.rows, f.err
}

func (f *fakeRepo) ListFavorites(ctx context.Context) ([]model.Artwork, error) {
	f.record("ListFavorites")
	return f.rows, f.err
}

func (f *fakeRepo) ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error) {
	f.record("ToggleFavorite")
	f.toggledID = id
	if f.err != nil {
		return nil, f.err
	}
	f.artwork.Favorite = !f.artwork.Favorite
	return f.artwork, nil
}

func (f *fakeRepo) InsertBatch(ctx context.Context, artworks []model.Artwork) (int64, error) {
	f.record("InsertBatch")
	return int64(len(artworks)), nil
}

func strPtr(s string) *string { return &s }

// =====================================================
// SEARCH DISPATCH
// =====================================================

func TestSearch_DispatchesPerFacet(t *testing.T) {
	tests := []struct {
		searchType string
		wantCall   string
	}{
		{"all", "SearchAny"},
		{"artist", "SearchByArtist"},
		{"style", "SearchByStyle"},
		{"place", "SearchByPlace"},
		{"date", "SearchByDateEnd"},
		{"color", "SearchByColor"},
	}

	for _, tt := range tests {
		t.Run(tt.searchType, func(t *testing.T) {
			repo := &fakeRepo{rows: []model.Artwork{{ID: 1}}}
			svc := NewArtworkService(repo)

			outcome, err := svc.Search(context.Background(), tt.searchType, "200")
			require.NoError(t, err)

			assert.Equal(t, model.OutcomeResults, outcome.Kind)
			assert.Equal(t, []string{tt.wantCall}, repo.calls)
		})
	}
}

func TestSearch_UnknownTypeShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewArtworkService(repo)

	for _, raw := range []string{"", "bogus", "ARTIST"} {
		outcome, err := svc.Search(context.Background(), raw, "monet")
		require.NoError(t, err)

		assert.Equal(t, model.OutcomeNoQuery, outcome.Kind)
		assert.Empty(t, outcome.Artworks)
	}
	assert.Empty(t, repo.calls, "no repository query should run for unknown types")
}

func TestSearch_EmptyResultIsStillResults(t *testing.T) {
	repo := &fakeRepo{rows: nil}
	svc := NewArtworkService(repo)

	outcome, err := svc.Search(context.Background(), "artist", "nobody")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeResults, outcome.Kind)
	assert.NotNil(t, outcome.Artworks)
	assert.Empty(t, outcome.Artworks)
}

func TestSearch_DateFacetDefaultsToZero(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewArtworkService(repo)

	_, err := svc.Search(context.Background(), "date", "not a year")
	require.NoError(t, err)
	assert.Equal(t, 0, repo.lastYear)

	_, err = svc.Search(context.Background(), "date", "1889")
	require.NoError(t, err)
	assert.Equal(t, 1889, repo.lastYear)
}

func TestSearch_RepositoryErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewArtworkService(repo)

	outcome, err := svc.Search(context.Background(), "all", "monet")
	assert.Nil(t, outcome)
	assert.ErrorContains(t, err, "connection refused")
}

// =====================================================
// COLOR FACET
// =====================================================

func TestSearchByColor_ParsesHue(t *testing.T) {
	repo := &fakeRepo{rows: []model.Artwork{{ID: 9}}}
	svc := NewArtworkService(repo)

	outcome, err := svc.SearchByColor(context.Background(), " 200.5 ")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeResults, outcome.Kind)
	assert.Equal(t, 200.5, repo.lastHue)
}

func TestSearchByColor_UnparsableHueIsInvalidInput(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewArtworkService(repo)

	outcome, err := svc.SearchByColor(context.Background(), "bluish")
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeInvalidInput, outcome.Kind)
	assert.Empty(t, repo.calls, "invalid hue must not reach the repository")
}

// =====================================================
// WEIGHT FACET
// =====================================================

func TestSearchByWeight_DefaultsToZero(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewArtworkService(repo)

	_, err := svc.SearchByWeight(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, repo.lastMin)

	_, err = svc.SearchByWeight(context.Background(), "1500")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, repo.lastMin)
}

// =====================================================
// ZOOM
// =====================================================

func TestGetZoom_DerivesIdentifierFromImageURL(t *testing.T) {
	repo := &fakeRepo{zoomInfo: &model.ZoomInfo{
		ImageURL:        strPtr("https://www.artic.edu/iiif/2/abc-123/full/843,/0/default.jpg"),
		ColorHue:        203,
		ColorSaturation: 71,
		ColorLightness:  40,
	}}
	svc := NewArtworkService(repo)

	zoom, err := svc.GetZoom(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "https://www.artic.edu/iiif/2/abc-123", zoom.Identifier)
	assert.Equal(t, "hsl(203 71% 40%)", zoom.ColorHSL)
}

func TestGetZoom_MissingImageFallsBack(t *testing.T) {
	repo := &fakeRepo{zoomInfo: &model.ZoomInfo{}}
	svc := NewArtworkService(repo)

	zoom, err := svc.GetZoom(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "https://www.artic.edu/iiif/2/f8fd76e9-c396-5678-36ed-6a348c904d27", zoom.Identifier)
}

func TestGetZoom_NotFoundPropagates(t *testing.T) {
	repo := &fakeRepo{err: model.ErrArtworkNotFound}
	svc := NewArtworkService(repo)

	zoom, err := svc.GetZoom(context.Background(), 404)
	assert.Nil(t, zoom)
	assert.ErrorIs(t, err, model.ErrArtworkNotFound)
}

// =====================================================
// FAVORITE TOGGLE
// =====================================================

func TestToggleFavorite(t *testing.T) {
	repo := &fakeRepo{artwork: &model.Artwork{ID: 7}}
	svc := NewArtworkService(repo)

	updated, err := svc.ToggleFavorite(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, repo.toggledID)
	assert.True(t, updated.Favorite)
}

func TestToggleFavorite_TwiceRestores(t *testing.T) {
	repo := &fakeRepo{artwork: &model.Artwork{ID: 7}}
	svc := NewArtworkService(repo)

	first, err := svc.ToggleFavorite(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, first.Favorite)

	second, err := svc.ToggleFavorite(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, second.Favorite)
}

func TestToggleFavorite_NotFound(t *testing.T) {
	repo := &fakeRepo{err: model.ErrArtworkNotFound}
	svc := NewArtworkService(repo)

	updated, err := svc.ToggleFavorite(context.Background(), 999)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, model.ErrArtworkNotFound)
}
