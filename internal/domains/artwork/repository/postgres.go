package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"artworks-backend/internal/domains/artwork/model"
	"artworks-backend/pkg/cache"
	"artworks-backend/pkg/database"
)

// postgresRepository implements ArtworkRepository.
// Uses pgxpool for PostgreSQL and Redis for caching detail reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new artwork repository instance.
// Receives pool and cache from the container.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) ArtworkRepository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	artworkCacheKeyPrefix = "artwork:"
	zoomCacheKeyPrefix    = "artwork:zoom:"
	cacheTTL              = 15 * time.Minute
)

// listColumns is the shared projection for facet list queries. The
// artist facet uses the slimmer previewColumns instead, and detail reads
// use fullColumns.
const listColumns = `id, title, artist, artist_title, place, medium, technique, description,
		style, type, category, term, subject, classification, provenance, alt_text,
		date_label, date_end, image_url, is_boosted, favorite, weight,
		color_h, color_s, color_l`

const previewColumns = `id, title, artist, artist_title, image_url, alt_text, weight`

const fullColumns = listColumns + `,
		width, height, is_zoomable, has_multimedia_resources,
		has_educational_resources, has_advanced_imaging`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListRow(row rowScanner, a *model.Artwork) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Artist,
		&a.ArtistTitle,
		&a.Place,
		&a.Medium,
		&a.Technique,
		&a.Description,
		&a.Style,
		&a.Type,
		&a.Category,
		&a.Term,
		&a.Subject,
		&a.Classification,
		&a.Provenance,
		&a.AltText,
		&a.DateLabel,
		&a.DateEnd,
		&a.ImageURL,
		&a.IsBoosted,
		&a.Favorite,
		&a.Weight,
		&a.ColorHue,
		&a.ColorSaturation,
		&a.ColorLightness,
	)
}

func scanFullRow(row rowScanner, a *model.Artwork) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Artist,
		&a.ArtistTitle,
		&a.Place,
		&a.Medium,
		&a.Technique,
		&a.Description,
		&a.Style,
		&a.Type,
		&a.Category,
		&a.Term,
		&a.Subject,
		&a.Classification,
		&a.Provenance,
		&a.AltText,
		&a.DateLabel,
		&a.DateEnd,
		&a.ImageURL,
		&a.IsBoosted,
		&a.Favorite,
		&a.Weight,
		&a.ColorHue,
		&a.ColorSaturation,
		&a.ColorLightness,
		&a.Width,
		&a.Height,
		&a.IsZoomable,
		&a.HasMultimediaResources,
		&a.HasEducationalResources,
		&a.HasAdvancedImaging,
	)
}

// collectListRows drains a facet query into a slice. Always returns a
// non-nil slice so an empty result marshals as [] rather than null.
func collectListRows(rows pgx.Rows) ([]model.Artwork, error) {
	defer rows.Close()

	artworks := []model.Artwork{}
	for rows.Next() {
		var a model.Artwork
		if err := scanListRow(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artworks: %w", err)
	}

	return artworks, nil
}

// GetByID retrieves one artwork's full projection with caching
func (r *postgresRepository) GetByID(ctx context.Context, id int) (*model.Artwork, error) {
	cacheKey := fmt.Sprintf("%s%d", artworkCacheKeyPrefix, id)

	var a model.Artwork
	cached, err := r.cache.Get(ctx, cacheKey, &a)
	if err == nil && cached {
		return &a, nil
	}

	query := `
        SELECT ` + fullColumns + `
        FROM artworks
        WHERE id = $1
    `

	err = scanFullRow(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to get artwork by id: %w", err)
	}

	// Cache write failure never fails the read path
	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

// GetZoomInfo retrieves the image/color projection for the zoom viewer
func (r *postgresRepository) GetZoomInfo(ctx context.Context, id int) (*model.ZoomInfo, error) {
	cacheKey := fmt.Sprintf("%s%d", zoomCacheKeyPrefix, id)

	var z model.ZoomInfo
	cached, err := r.cache.Get(ctx, cacheKey, &z)
	if err == nil && cached {
		return &z, nil
	}

	query := `
        SELECT image_url, color_h, color_s, color_l
        FROM artworks
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&z.ImageURL,
		&z.ColorHue,
		&z.ColorSaturation,
		&z.ColorLightness,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to get zoom info: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, z, cacheTTL)

	return &z, nil
}

// SearchAny matches the query against every descriptive text field, or
// date_end against its integer parse
func (r *postgresRepository) SearchAny(ctx context.Context, text string) ([]model.Artwork, error) {
	predicate, args := searchAnyPredicate(text)

	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE %s
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, predicate, searchLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks: %w", err)
	}

	return collectListRows(rows)
}

// SearchByArtist matches artist or artist_title; returns the slim
// preview projection the artist result list renders
func (r *postgresRepository) SearchByArtist(ctx context.Context, text string) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+previewColumns+`
        FROM artworks
        WHERE %s OR %s
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, containsClause("artist", 1), containsClause("artist_title", 1), searchLimit)

	rows, err := r.pool.Query(ctx, query, orSentinel(text))
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks by artist: %w", err)
	}
	defer rows.Close()

	artworks := []model.Artwork{}
	for rows.Next() {
		var a model.Artwork
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Artist,
			&a.ArtistTitle,
			&a.ImageURL,
			&a.AltText,
			&a.Weight,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating artworks: %w", err)
	}

	return artworks, nil
}

// searchByField runs the shared single-column contains query
func (r *postgresRepository) searchByField(ctx context.Context, column, text string) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE %s
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, containsClause(column, 1), searchLimit)

	rows, err := r.pool.Query(ctx, query, orSentinel(text))
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks by %s: %w", column, err)
	}

	return collectListRows(rows)
}

func (r *postgresRepository) SearchByStyle(ctx context.Context, text string) ([]model.Artwork, error) {
	return r.searchByField(ctx, "style", text)
}

func (r *postgresRepository) SearchByPlace(ctx context.Context, text string) ([]model.Artwork, error) {
	return r.searchByField(ctx, "place", text)
}

func (r *postgresRepository) SearchBySubject(ctx context.Context, text string) ([]model.Artwork, error) {
	return r.searchByField(ctx, "subject", text)
}

// SearchByDateEnd is an exact match on date_end
func (r *postgresRepository) SearchByDateEnd(ctx context.Context, year int) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE date_end = $1
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, searchLimit)

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks by date: %w", err)
	}

	return collectListRows(rows)
}

// SearchByColor matches hue within an open ±2 interval, excluding
// near-gray (saturation <= 15) and near-white/black (lightness outside
// the open 15..85 band) rows
func (r *postgresRepository) SearchByColor(ctx context.Context, hue float64) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE color_h > $1 - 2 AND color_h < $1 + 2
          AND color_s > 15
          AND color_l > 15 AND color_l < 85
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, searchLimit)

	rows, err := r.pool.Query(ctx, query, hue)
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks by color: %w", err)
	}

	return collectListRows(rows)
}

// SearchByWeight returns rows strictly above the weight threshold
func (r *postgresRepository) SearchByWeight(ctx context.Context, min float64) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE weight > $1
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, searchLimit)

	rows, err := r.pool.Query(ctx, query, min)
	if err != nil {
		return nil, fmt.Errorf("failed to search artworks by weight: %w", err)
	}

	return collectListRows(rows)
}

// ListFavorites returns the bounded favorites view
func (r *postgresRepository) ListFavorites(ctx context.Context) ([]model.Artwork, error) {
	query := fmt.Sprintf(`
        SELECT `+listColumns+`
        FROM artworks
        WHERE favorite = true
        ORDER BY weight DESC
        OFFSET 0 LIMIT %d
    `, favoritesLimit)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return collectListRows(rows)
}

// ToggleFavorite flips the favorite flag in a single atomic UPDATE, so
// concurrent toggles on the same id serialize at the row instead of
// racing a read-modify-write.
func (r *postgresRepository) ToggleFavorite(ctx context.Context, id int) (*model.Artwork, error) {
	query := `
        UPDATE artworks
        SET favorite = NOT favorite
        WHERE id = $1
        RETURNING ` + fullColumns + `
    `

	var a model.Artwork
	err := scanFullRow(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to toggle favorite: %w", err)
	}

	// Invalidate cached projections of this row
	r.cache.Delete(ctx,
		fmt.Sprintf("%s%d", artworkCacheKeyPrefix, id),
		fmt.Sprintf("%s%d", zoomCacheKeyPrefix, id),
	)

	return &a, nil
}

// InsertBatch bulk-loads seeded rows inside one transaction via COPY
func (r *postgresRepository) InsertBatch(ctx context.Context, artworks []model.Artwork) (int64, error) {
	if len(artworks) == 0 {
		return 0, nil
	}

	columns := []string{
		"id", "title", "artist", "artist_title", "place", "medium", "technique",
		"description", "style", "type", "category", "term", "subject",
		"classification", "provenance", "alt_text", "date_label", "date_end",
		"image_url", "is_boosted", "favorite", "weight",
		"color_h", "color_s", "color_l",
		"width", "height", "is_zoomable", "has_multimedia_resources",
		"has_educational_resources", "has_advanced_imaging",
	}

	rows := make([][]any, 0, len(artworks))
	for _, a := range artworks {
		rows = append(rows, []any{
			a.ID, a.Title, a.Artist, a.ArtistTitle, a.Place, a.Medium, a.Technique,
			a.Description, a.Style, a.Type, a.Category, a.Term, a.Subject,
			a.Classification, a.Provenance, a.AltText, a.DateLabel, a.DateEnd,
			a.ImageURL, a.IsBoosted, a.Favorite, a.Weight,
			a.ColorHue, a.ColorSaturation, a.ColorLightness,
			a.Width, a.Height, a.IsZoomable, a.HasMultimediaResources,
			a.HasEducationalResources, a.HasAdvancedImaging,
		})
	}

	var inserted int64
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{"artworks"}, columns, pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("failed to copy artworks: %w", err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
